package util

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("hunter22")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("hash equals plaintext")
	}

	if !CheckPassword("hunter22", hash) {
		t.Error("correct password rejected")
	}
	if CheckPassword("hunter23", hash) {
		t.Error("wrong password accepted")
	}
}

func TestCheckPasswordBadHash(t *testing.T) {
	if CheckPassword("hunter22", "not-a-bcrypt-hash") {
		t.Error("garbage hash accepted")
	}
}
