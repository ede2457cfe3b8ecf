package rtcrelay

import (
	"testing"
)

func TestNewPattern(t *testing.T) {
	tests := []struct {
		name        string
		pattern     string
		shouldError bool
	}{
		{
			name:        "exact event name",
			pattern:     "onUserJoined",
			shouldError: false,
		},
		{
			name:        "trailing wildcard",
			pattern:     "onRemote*",
			shouldError: false,
		},
		{
			name:        "match everything",
			pattern:     "*",
			shouldError: false,
		},
		{
			name:        "single character wildcard",
			pattern:     "onUserMute?????",
			shouldError: false,
		},
		{
			name:        "group",
			pattern:     "on(Local|Remote)VideoStats",
			shouldError: false,
		},
		{
			name:        "empty pattern",
			pattern:     "",
			shouldError: true,
		},
		{
			name:        "unterminated group",
			pattern:     "on(Local|Remote",
			shouldError: true,
		},
		{
			name:        "empty alternative",
			pattern:     "on(Local|)VideoStats",
			shouldError: true,
		},
		{
			name:        "invalid character",
			pattern:     "on User",
			shouldError: true,
		},
		{
			name:        "invalid character in group",
			pattern:     "on(Us*er)",
			shouldError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pattern, err := NewPattern(tt.pattern)
			if tt.shouldError {
				if err == nil {
					t.Errorf("expected error for pattern %q, got nil", tt.pattern)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error for pattern %q: %v", tt.pattern, err)
			}
			if pattern.String() != tt.pattern {
				t.Errorf("expected String() %q, got %q", tt.pattern, pattern.String())
			}
		})
	}
}

func TestPatternMatch(t *testing.T) {
	tests := []struct {
		pattern string
		event   string
		matches bool
	}{
		{"onUserJoined", "onUserJoined", true},
		{"onUserJoined", "onUserJoinedLate", false},
		{"onUserJoined", "onUser", false},
		{"onRemote*", "onRemoteVideoStats", true},
		{"onRemote*", "onRemote", true},
		{"onRemote*", "onLocalVideoStats", false},
		{"*Stats", "onRtcStats", true},
		{"*Stats", "onRtcStatsChanged", false},
		{"*", "onCameraReady", true},
		{"onUserMute?????", "onUserMuteAudio", true},
		{"onUserMute?????", "onUserMuteVideo", true},
		{"onUserMute?????", "onUserMuteAudioX", false},
		{"on(Local|Remote)VideoStats", "onLocalVideoStats", true},
		{"on(Local|Remote)VideoStats", "onRemoteVideoStats", true},
		{"on(Local|Remote)VideoStats", "onRemoteAudioStats", false},
		{"on(User|Remote)*", "onUserOffline", true},
		{"on.Event", "onXEvent", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.event, func(t *testing.T) {
			pattern := MustPattern(tt.pattern)
			if got := pattern.Match(tt.event); got != tt.matches {
				t.Errorf("pattern %q match %q: expected %v, got %v", tt.pattern, tt.event, tt.matches, got)
			}
		})
	}
}

func TestPatternIsLiteral(t *testing.T) {
	if !MustPattern("onError").IsLiteral() {
		t.Error("expected onError to be literal")
	}
	if MustPattern("onError*").IsLiteral() {
		t.Error("expected onError* not to be literal")
	}
	if MustPattern("on(Error|Warning)").IsLiteral() {
		t.Error("expected group not to be literal")
	}
}

func TestParsePatternChunks(t *testing.T) {
	chunks, err := parsePatternChunks("on(Local|Remote)*Stats")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(chunks) != 4 {
		t.Fatalf("expected 4 chunks, got %d", len(chunks))
	}
	if chunks[0].kind != static || chunks[0].pattern != "on" {
		t.Errorf("unexpected first chunk %#v", chunks[0])
	}
	if chunks[1].kind != group || len(chunks[1].alternatives) != 2 {
		t.Errorf("unexpected group chunk %#v", chunks[1])
	}
	if chunks[2].kind != wildcard || chunks[2].modifier != zeroOrMore {
		t.Errorf("unexpected wildcard chunk %#v", chunks[2])
	}
	if chunks[3].kind != static || chunks[3].pattern != "Stats" {
		t.Errorf("unexpected last chunk %#v", chunks[3])
	}
}

func TestParsePatterns(t *testing.T) {
	patterns, err := ParsePatterns("onUser*, onError,,")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patterns) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(patterns))
	}
	if !MatchAny(patterns, "onUserJoined") || !MatchAny(patterns, "onError") {
		t.Error("expected patterns to match")
	}
	if MatchAny(patterns, "onWarning") {
		t.Error("expected onWarning not to match")
	}
	if !MatchAny(nil, "onWarning") {
		t.Error("expected empty pattern list to match everything")
	}

	if _, err := ParsePatterns("onUser*,on User"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestMustPatternPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustPattern("(")
}
