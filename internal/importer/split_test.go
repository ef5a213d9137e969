package importer

import (
	"reflect"
	"testing"
)

func TestSplitKeywordField_MixedDelimiters(t *testing.T) {
	got := SplitKeywordField("JavaScript, React; Node.js | Express and MongoDB")
	want := []string{"Javascript", "React", "Node.js", "Express", "Mongodb"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplitKeywordField_SlashSplit(t *testing.T) {
	got := SplitKeywordField("Frontend / Backend / Full Stack")
	want := []string{"Frontend", "Backend", "Full stack"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplitKeywordField_DropsURLFragments(t *testing.T) {
	got := SplitKeywordField("Design, https://portfolio.example.com/work")
	want := []string{"Design"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestSplitKeywordField_Empty(t *testing.T) {
	if got := SplitKeywordField("   "); len(got) != 0 {
		t.Fatalf("expected no labels, got %v", got)
	}
	if got := SplitKeywordField(", ; |"); len(got) != 0 {
		t.Fatalf("expected no labels, got %v", got)
	}
}

func TestSplitKeywordField_TrimsAndTitleCases(t *testing.T) {
	got := SplitKeywordField("  python ,  GOLANG  ")
	want := []string{"Python", "Golang"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestDedupeLabels(t *testing.T) {
	got := DedupeLabels([]string{"Python", "python", "Go", "PYTHON", "Go"})
	want := []string{"Python", "Go"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}
