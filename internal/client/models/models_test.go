package models

import "testing"

func TestRegistrationForm_IsComplete(t *testing.T) {
	full := RegistrationForm{
		Username: "bat",
		Email:    "b@x.com",
		Password: "p",
		Name:     "Bruce",
		Lastname: "Wayne",
	}
	if !full.IsComplete() {
		t.Fatal("expected complete form")
	}

	tests := []struct {
		name   string
		mutate func(*RegistrationForm)
	}{
		{"missing username", func(f *RegistrationForm) { f.Username = "" }},
		{"missing email", func(f *RegistrationForm) { f.Email = "" }},
		{"missing password", func(f *RegistrationForm) { f.Password = "" }},
		{"missing name", func(f *RegistrationForm) { f.Name = "" }},
		{"missing lastname", func(f *RegistrationForm) { f.Lastname = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := full
			tt.mutate(&f)
			if f.IsComplete() {
				t.Fatal("expected incomplete form")
			}
		})
	}
}

func TestRegistrationForm_Reset(t *testing.T) {
	f := RegistrationForm{Username: "bat", Email: "b@x.com", Password: "p", Name: "Bruce", Lastname: "Wayne"}
	f.Reset()
	if f != (RegistrationForm{}) {
		t.Fatalf("expected zero form, got %+v", f)
	}
}
