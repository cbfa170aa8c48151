package speech

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	speech "cloud.google.com/go/speech/apiv1"
	"cloud.google.com/go/speech/apiv1/speechpb"
	gax "github.com/googleapis/gax-go/v2"
	"google.golang.org/api/option"
)

const (
	MaxDuration = 60 * time.Second
	MaxFileSize = 5 * 1024 * 1024
)

var (
	ErrTooLong       = errors.New("audio is longer than one minute")
	ErrNotConfigured = errors.New("speech recognition is not configured")
)

// Transcriber turns a short voice message into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, language string) (string, error)
}

type recognizer interface {
	Recognize(ctx context.Context, req *speechpb.RecognizeRequest, opts ...gax.CallOption) (*speechpb.RecognizeResponse, error)
}

// GoogleTranscriber uses Google Cloud Speech-to-Text.
type GoogleTranscriber struct {
	client  recognizer
	closeFn func() error
}

func NewGoogleTranscriber(ctx context.Context, credentialsFile string) (*GoogleTranscriber, error) {
	if credentialsFile == "" {
		return nil, ErrNotConfigured
	}
	client, err := speech.NewClient(ctx, option.WithCredentialsFile(credentialsFile))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize speech client: %w", err)
	}
	return &GoogleTranscriber{client: client, closeFn: client.Close}, nil
}

func (t *GoogleTranscriber) Close() error {
	if t.closeFn == nil {
		return nil
	}
	return t.closeFn()
}

// Transcribe accepts a WAV upload. Audio that is not 16-bit mono PCM is
// converted with ffmpeg first.
func (t *GoogleTranscriber) Transcribe(ctx context.Context, audio []byte, language string) (string, error) {
	if language == "" {
		language = "en-US"
	}
	pcm, sampleRate, err := prepare(ctx, audio)
	if err != nil {
		return "", err
	}

	req := &speechpb.RecognizeRequest{
		Config: &speechpb.RecognitionConfig{
			Encoding:          speechpb.RecognitionConfig_LINEAR16,
			SampleRateHertz:   sampleRate,
			LanguageCode:      language,
			AudioChannelCount: 1,
		},
		Audio: &speechpb.RecognitionAudio{
			AudioSource: &speechpb.RecognitionAudio_Content{Content: pcm},
		},
	}
	resp, err := t.client.Recognize(ctx, req)
	if err != nil {
		return "", fmt.Errorf("speech recognition failed: %w", err)
	}
	return joinTranscript(resp), nil
}

func prepare(ctx context.Context, audio []byte) ([]byte, int32, error) {
	if len(audio) > MaxFileSize {
		return nil, 0, fmt.Errorf("audio exceeds %d bytes", MaxFileSize)
	}
	header, err := parseWaveHeader(audio)
	if err != nil {
		return nil, 0, fmt.Errorf("invalid audio: %w", err)
	}
	if header.duration() > MaxDuration {
		return nil, 0, ErrTooLong
	}
	if header.recognisable() {
		return audio, int32(header.SampleRate), nil
	}
	converted, err := convertAudio(ctx, audio)
	if err != nil {
		return nil, 0, err
	}
	return converted, 16000, nil
}

// joinTranscript keeps the top alternative of each result.
func joinTranscript(resp *speechpb.RecognizeResponse) string {
	var parts []string
	for _, result := range resp.GetResults() {
		if alts := result.GetAlternatives(); len(alts) > 0 {
			parts = append(parts, strings.TrimSpace(alts[0].GetTranscript()))
		}
	}
	return strings.Join(parts, " ")
}

// Unavailable is used when no speech credentials are configured.
type Unavailable struct{}

func (Unavailable) Transcribe(context.Context, []byte, string) (string, error) {
	return "", ErrNotConfigured
}
