package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source.Port != 3306 {
		t.Errorf("expected source port 3306, got %d", cfg.Source.Port)
	}
	if cfg.Source.TLS != "preferred" {
		t.Errorf("expected source TLS 'preferred', got %s", cfg.Source.TLS)
	}

	if cfg.Mining.MinSup != 1 {
		t.Errorf("expected min_sup 1, got %v", cfg.Mining.MinSup)
	}
	if cfg.Mining.MinSupMode != MinSupCount {
		t.Errorf("expected min_sup_mode 'count', got %s", cfg.Mining.MinSupMode)
	}
	if cfg.Mining.Verification != "index" {
		t.Errorf("expected verification 'index', got %s", cfg.Mining.Verification)
	}
	if cfg.Mining.MaxDepth != 0 {
		t.Errorf("expected unbounded max_depth, got %d", cfg.Mining.MaxDepth)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected logging level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected logging output 'stderr', got %s", cfg.Logging.Output)
	}
}

func TestGetJobMining(t *testing.T) {
	global := MiningConfig{MinSup: 3, MinSupMode: MinSupCount, MaxDepth: 0, Verification: "index"}

	tests := []struct {
		name     string
		job      JobConfig
		expected MiningConfig
	}{
		{
			name:     "no override",
			job:      JobConfig{},
			expected: global,
		},
		{
			name:     "min_sup override",
			job:      JobConfig{Mining: &MiningConfig{MinSup: 5}},
			expected: MiningConfig{MinSup: 5, MinSupMode: MinSupCount, Verification: "index"},
		},
		{
			name:     "mode and depth override",
			job:      JobConfig{Mining: &MiningConfig{MinSup: 0.2, MinSupMode: MinSupFraction, MaxDepth: 4, Verification: "scan"}},
			expected: MiningConfig{MinSup: 0.2, MinSupMode: MinSupFraction, MaxDepth: 4, Verification: "scan"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.job.GetJobMining(global)
			if got != tt.expected {
				t.Errorf("GetJobMining() = %+v, expected %+v", got, tt.expected)
			}
		})
	}
}

func TestConfigGetJobMining_UnknownJob(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Mining.MinSup = 7

	got := cfg.GetJobMining("missing")
	if got.MinSup != 7 {
		t.Errorf("expected global min_sup 7 for unknown job, got %v", got.MinSup)
	}
}

func TestInputDefaults(t *testing.T) {
	in := InputConfig{}
	if in.EffectiveSeparator() != "\t" {
		t.Errorf("expected tab separator, got %q", in.EffectiveSeparator())
	}
	if in.EffectiveFormat() != FormatFile {
		t.Errorf("expected file format, got %q", in.EffectiveFormat())
	}

	in = InputConfig{Separator: ",", Format: FormatMySQL}
	if in.EffectiveSeparator() != "," {
		t.Errorf("expected comma separator, got %q", in.EffectiveSeparator())
	}
	if in.EffectiveFormat() != FormatMySQL {
		t.Errorf("expected mysql format, got %q", in.EffectiveFormat())
	}
}
