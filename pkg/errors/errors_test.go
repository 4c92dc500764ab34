package errors

import (
	"fmt"
	"testing"
)

func TestCodedErrorsMatchSentinels(t *testing.T) {
	cause := fmt.Errorf("boom")
	cases := []struct {
		err    error
		target error
		code   string
	}{
		{Generation("script response malformed", cause), ErrGeneration, CodeGeneration},
		{Auth("token exchange", cause), ErrAuth, CodeAuth},
		{AuthCancelled("user closed consent"), ErrAuthCancelled, CodeAuthCancelled},
		{Upload("youtube rejected video", cause), ErrUpload, CodeUpload},
		{Configuration("GEMINI_API_KEY is not set"), ErrConfiguration, CodeConfiguration},
		{InvalidInput("unknown tone"), ErrInvalidInput, CodeInvalidInput},
	}

	for _, tc := range cases {
		if !Is(tc.err, tc.target) {
			t.Fatalf("%v: expected to match %v", tc.err, tc.target)
		}
		if got := GetCode(tc.err); got != tc.code {
			t.Fatalf("%v: code = %q, want %q", tc.err, got, tc.code)
		}
	}

	if Is(Upload("x", nil), ErrGeneration) {
		t.Fatal("upload error must not match generation sentinel")
	}
}

func TestWrappedCauseIsReachable(t *testing.T) {
	cause := fmt.Errorf("quota exceeded")
	err := fmt.Errorf("step failed: %w", Generation("speech", cause))

	if !Is(err, cause) {
		t.Fatal("expected cause to be reachable through wrapping")
	}
	if !Is(err, ErrGeneration) {
		t.Fatal("expected sentinel to be reachable through wrapping")
	}
	if got := GetMessage(err); got != "speech" {
		t.Fatalf("message = %q", got)
	}
}

func TestHelpers(t *testing.T) {
	if !IsCancelled(AuthCancelled("closed")) {
		t.Fatal("IsCancelled")
	}
	if !IsConfiguration(Configuration("missing")) {
		t.Fatal("IsConfiguration")
	}
	if !Is(NotFound("gone"), ErrNotFound) || GetCode(NotFound("gone")) != CodeNotFound {
		t.Fatal("NotFound")
	}
	if Wrap(nil, "noop") != nil {
		t.Fatal("Wrap(nil) must stay nil")
	}
}
