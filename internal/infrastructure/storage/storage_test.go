package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crewbase/recruiting-system/internal/core/domain"
)

func TestLocalStore_PutGetRoundtrip(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost:8080/storage")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, "resumes", "abc.pdf", []byte("content")); err != nil {
		t.Fatalf("put: %v", err)
	}

	data, err := store.Get(ctx, "resumes", "abc.pdf")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "content" {
		t.Fatalf("unexpected content: %q", data)
	}

	if got := store.PublicURL("resumes", "abc.pdf"); got != "http://localhost:8080/storage/resumes/abc.pdf" {
		t.Fatalf("unexpected public url: %q", got)
	}
}

func TestLocalStore_PutIsWriteOnce(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	ctx := context.Background()

	if err := store.Put(ctx, "resumes", "abc.pdf", []byte("v1")); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "resumes", "abc.pdf", []byte("v2")); !errors.Is(err, domain.ErrObjectExists) {
		t.Fatalf("expected ErrObjectExists, got %v", err)
	}

	data, err := store.Get(ctx, "resumes", "abc.pdf")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(data) != "v1" {
		t.Fatalf("original content must survive, got %q", data)
	}
}

func TestLocalStore_RejectsTraversal(t *testing.T) {
	store, err := NewLocalStore(t.TempDir(), "http://localhost")
	if err != nil {
		t.Fatalf("new store: %v", err)
	}

	if err := store.Put(context.Background(), "resumes", "../../etc/passwd", []byte("x")); !errors.Is(err, domain.ErrObjectNotFound) {
		t.Fatalf("expected traversal to be rejected, got %v", err)
	}
	if _, err := store.Get(context.Background(), "..", "secret"); !errors.Is(err, domain.ErrObjectNotFound) {
		t.Fatalf("expected traversal to be rejected, got %v", err)
	}
}

func TestJWTSigner_SignVerifyRoundtrip(t *testing.T) {
	signer := NewJWTSigner("test-secret")

	token, err := signer.Sign("resumes", "abc.pdf", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	bucket, key, err := signer.Verify(token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if bucket != "resumes" || key != "abc.pdf" {
		t.Fatalf("unexpected claims: %s %s", bucket, key)
	}
}

func TestJWTSigner_RejectsExpiredToken(t *testing.T) {
	signer := NewJWTSigner("test-secret")

	token, err := signer.Sign("resumes", "abc.pdf", -time.Minute)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, _, err := signer.Verify(token); !errors.Is(err, domain.ErrInvalidSignedURL) {
		t.Fatalf("expected ErrInvalidSignedURL, got %v", err)
	}
}

func TestJWTSigner_RejectsForeignToken(t *testing.T) {
	token, err := NewJWTSigner("other-secret").Sign("resumes", "abc.pdf", time.Hour)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, _, err := NewJWTSigner("test-secret").Verify(token); !errors.Is(err, domain.ErrInvalidSignedURL) {
		t.Fatalf("expected ErrInvalidSignedURL, got %v", err)
	}

	if _, _, err := NewJWTSigner("test-secret").Verify("not-a-token"); !errors.Is(err, domain.ErrInvalidSignedURL) {
		t.Fatalf("expected ErrInvalidSignedURL, got %v", err)
	}
}
