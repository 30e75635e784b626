package oracle

import "context"

// Provider represents a connector to the hosted AI service backing the oracle.
type Provider interface {
	// Complete returns the model's reply to a prompt under the given system persona.
	Complete(ctx context.Context, system, prompt string) (string, error)
	// Transcribe converts recorded speech to text.
	Transcribe(ctx context.Context, audio []byte, filename string) (string, error)
	// Speak renders text as speech and returns base64-encoded mp3 audio.
	Speak(ctx context.Context, text string) (string, error)
}

// StaticProvider simulates the AI service with canned responses. It stands in
// for the real provider in tests and keyless development environments.
type StaticProvider struct {
	Reply         string
	Transcription string
	Audio         string
	Err           error
}

// Complete returns the configured reply.
func (p StaticProvider) Complete(_ context.Context, _, _ string) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	if p.Reply == "" {
		return "The currents are quiet today. Ask again, seeker.", nil
	}
	return p.Reply, nil
}

// Transcribe returns the configured transcription.
func (p StaticProvider) Transcribe(_ context.Context, _ []byte, _ string) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.Transcription, nil
}

// Speak returns the configured audio payload.
func (p StaticProvider) Speak(_ context.Context, _ string) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.Audio, nil
}
