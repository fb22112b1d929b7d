package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// DurationBounds holds inclusive duration limits in seconds
type DurationBounds struct {
	Min float64
	Max float64
}

// Default duration bounds for submitted media
var (
	DefaultVideoBounds = DurationBounds{Min: 3, Max: 10}
	DefaultAudioBounds = DurationBounds{Min: 5, Max: 15}
)

// Result is the outcome of a validation check. Duration is only set when
// a duration was successfully measured.
type Result struct {
	Valid    bool
	Message  string
	Duration float64
}

// Validator performs format and duration checks on submission files
type Validator struct {
	prober  DurationProber
	sniffer ContentSniffer
	checker FileChecker
	decoder ImageDecoder
	video   DurationBounds
	audio   DurationBounds
}

// ValidatorOption is a functional option for configuring Validator
type ValidatorOption func(*Validator)

// WithVideoBounds overrides the video duration bounds
func WithVideoBounds(b DurationBounds) ValidatorOption {
	return func(v *Validator) {
		v.video = b
	}
}

// WithAudioBounds overrides the audio duration bounds
func WithAudioBounds(b DurationBounds) ValidatorOption {
	return func(v *Validator) {
		v.audio = b
	}
}

// WithImageDecoder enables full decode verification for images
func WithImageDecoder(d ImageDecoder) ValidatorOption {
	return func(v *Validator) {
		v.decoder = d
	}
}

// NewValidator creates a validator. The sniffer may be nil, in which case
// content sniffing is skipped and only extensions are checked.
func NewValidator(prober DurationProber, sniffer ContentSniffer, checker FileChecker, opts ...ValidatorOption) *Validator {
	v := &Validator{
		prober:  prober,
		sniffer: sniffer,
		checker: checker,
		video:   DefaultVideoBounds,
		audio:   DefaultAudioBounds,
	}

	for _, opt := range opts {
		opt(v)
	}

	return v
}

// ValidateFormat checks existence, extension and (when a sniffer is
// configured) the actual file content against the kind's allow-list.
// Runs entirely locally, before any network call.
func (v *Validator) ValidateFormat(path string, kind Kind) Result {
	if !v.checker.Exists(path) {
		return Result{Valid: false, Message: "File does not exist"}
	}

	ext := strings.ToLower(filepath.Ext(path))
	allowed := kind.Extensions()
	found := false
	for _, a := range allowed {
		if ext == a {
			found = true
			break
		}
	}
	if !found {
		return Result{
			Valid:   false,
			Message: fmt.Sprintf("Invalid %s format. Allowed: %s", kind, strings.Join(allowed, ", ")),
		}
	}

	if v.sniffer != nil {
		ok, detected, err := v.sniffer.Matches(path, kind)
		if err != nil {
			return Result{Valid: false, Message: fmt.Sprintf("Could not read file content: %v", err)}
		}
		if !ok {
			return Result{
				Valid:   false,
				Message: fmt.Sprintf("File content is not a valid %s (detected %s)", kind, detected),
			}
		}
	}

	if kind == KindImage && v.decoder != nil && v.decoder.Available() {
		if err := v.decoder.Check(path); err != nil {
			return Result{Valid: false, Message: fmt.Sprintf("Image could not be decoded: %v", err)}
		}
	}

	return Result{Valid: true}
}

// ValidateVideoDuration checks that the video duration is within bounds
func (v *Validator) ValidateVideoDuration(ctx context.Context, path string) Result {
	return v.validateDuration(ctx, path, "Video", v.video)
}

// ValidateAudioDuration checks that the audio duration is within bounds
func (v *Validator) ValidateAudioDuration(ctx context.Context, path string) Result {
	return v.validateDuration(ctx, path, "Audio", v.audio)
}

// validateDuration probes the duration and compares it to the bounds.
// A probe failure is an invalid result, not an internal error.
func (v *Validator) validateDuration(ctx context.Context, path, label string, bounds DurationBounds) Result {
	duration, err := v.prober.Duration(ctx, path)
	if err != nil {
		return Result{
			Valid:   false,
			Message: fmt.Sprintf("Could not read %s duration. The file may be corrupted.", strings.ToLower(label)),
		}
	}

	if duration < bounds.Min {
		return Result{
			Valid:    false,
			Message:  fmt.Sprintf("%s duration (%.2fs) is less than minimum (%gs)", label, duration, bounds.Min),
			Duration: duration,
		}
	}
	if duration > bounds.Max {
		return Result{
			Valid:    false,
			Message:  fmt.Sprintf("%s duration (%.2fs) exceeds maximum (%gs)", label, duration, bounds.Max),
			Duration: duration,
		}
	}

	return Result{Valid: true, Duration: duration}
}
