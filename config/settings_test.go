package config

import (
	"reflect"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  []string
	}{
		{"simple", "a,b,c", []string{"a", "b", "c"}},
		{"trims whitespace", " a , b ,c ", []string{"a", "b", "c"}},
		{"drops empties", "a,,b,", []string{"a", "b"}},
		{"single", "http://localhost:3000", []string{"http://localhost:3000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SplitList(tt.value); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	s := load()

	if s.AccessTokenExpireMinutes != 30 {
		t.Errorf("AccessTokenExpireMinutes = %d, want 30", s.AccessTokenExpireMinutes)
	}
	if s.RefreshTokenExpireDays != 7 {
		t.Errorf("RefreshTokenExpireDays = %d, want 7", s.RefreshTokenExpireDays)
	}
	if s.DefaultPageSize != 20 || s.MaxPageSize != 100 {
		t.Errorf("pagination bounds = %d/%d, want 20/100", s.DefaultPageSize, s.MaxPageSize)
	}
	if s.MaxUploadSize != 10485760 {
		t.Errorf("MaxUploadSize = %d, want 10485760", s.MaxUploadSize)
	}

	wantExts := []string{"pdf", "png", "jpg", "jpeg", "gif", "mp4", "mov"}
	if got := s.AllowedExtensionsList(); !reflect.DeepEqual(got, wantExts) {
		t.Errorf("AllowedExtensionsList() = %v, want %v", got, wantExts)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN_EXPIRE_MINUTES", "15")
	t.Setenv("ALLOWED_ORIGINS", "https://kenyaniyetu.org , https://staging.kenyaniyetu.org")
	t.Setenv("DEBUG", "false")

	s := load()

	if s.AccessTokenExpireMinutes != 15 {
		t.Errorf("AccessTokenExpireMinutes = %d, want 15", s.AccessTokenExpireMinutes)
	}
	if s.Debug {
		t.Error("Debug = true, want false")
	}

	want := []string{"https://kenyaniyetu.org", "https://staging.kenyaniyetu.org"}
	if got := s.AllowedOriginsList(); !reflect.DeepEqual(got, want) {
		t.Errorf("AllowedOriginsList() = %v, want %v", got, want)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")

	s := load()
	if s.RateLimitPerMinute != 60 {
		t.Errorf("RateLimitPerMinute = %d, want default 60", s.RateLimitPerMinute)
	}
}
