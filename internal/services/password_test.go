package services_test

import (
	"testing"

	"golang.org/x/crypto/bcrypt"

	"linkjobs/internal/services"
)

func TestBcryptHasherRoundTrip(t *testing.T) {
	h := services.BcryptHasher{Cost: bcrypt.MinCost}

	d1, err := h.Hash("Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := h.Hash("Passw0rd!")
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Fatal("two hashes of the same password should differ (salted)")
	}
	if !h.Verify("Passw0rd!", d1) || !h.Verify("Passw0rd!", d2) {
		t.Fatal("verify failed against own digest")
	}
	if h.Verify("wrong", d1) {
		t.Fatal("verify accepted a wrong password")
	}
}

func TestBcryptHasherMalformedDigest(t *testing.T) {
	h := services.BcryptHasher{}
	for _, digest := range []string{"", "not-a-digest", "$2a$xx$garbage"} {
		if h.Verify("anything", digest) {
			t.Fatalf("verify accepted malformed digest %q", digest)
		}
	}
}
