package main

import (
	"testing"
	"time"
)

func TestResolveSeed(t *testing.T) {
	now := time.Unix(0, 123456789)
	tests := []struct {
		name    string
		flag    uint64
		flagSet bool
		env     string
		want    uint64
		wantErr bool
	}{
		{"flag wins", 7, true, "99", 7, false},
		{"flag zero", 0, true, "99", 0, false},
		{"env", 0, false, "99", 99, false},
		{"clock", 0, false, "", 123456789, false},
		{"bad env", 0, false, "abc", 0, true},
		{"negative env", 0, false, "-4", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolveSeed(tt.flag, tt.flagSet, tt.env, now)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Fatalf("seed = %d, want %d", got, tt.want)
			}
		})
	}
}
