package main

import "testing"

func TestPortOf(t *testing.T) {
	tests := []struct {
		addr string
		want string
	}{
		{":23234", "23234"},
		{"0.0.0.0:2222", "2222"},
		{"[::1]:2200", "2200"},
		{"2222", "2222"},
	}
	for _, tt := range tests {
		if got := portOf(tt.addr); got != tt.want {
			t.Errorf("portOf(%q) = %q, want %q", tt.addr, got, tt.want)
		}
	}
}

func TestLoadRunnerConfigUnknownDifficulty(t *testing.T) {
	flagConfig, flagDifficulty = "", "nightmare"
	defer func() { flagDifficulty = "" }()

	if _, err := loadRunnerConfig(); err == nil {
		t.Fatal("expected error for unknown difficulty")
	}
}
