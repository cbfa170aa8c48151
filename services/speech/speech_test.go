package speech

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"testing"
	"time"

	"cloud.google.com/go/speech/apiv1/speechpb"
	gax "github.com/googleapis/gax-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func wav(sampleRate uint32, seconds int) []byte {
	dataSize := sampleRate * 2 * uint32(seconds)
	h := waveHeader{
		FileSize:      36 + dataSize,
		FmtSize:       16,
		AudioFormat:   1,
		NumChannels:   1,
		SampleRate:    sampleRate,
		ByteRate:      sampleRate * 2,
		BlockAlign:    2,
		BitsPerSample: 16,
		DataSize:      dataSize,
	}
	copy(h.RiffTag[:], "RIFF")
	copy(h.WaveTag[:], "WAVE")
	copy(h.FmtTag[:], "fmt ")
	copy(h.DataTag[:], "data")

	var buf bytes.Buffer
	_ = binary.Write(&buf, binary.LittleEndian, h)
	buf.Write(make([]byte, dataSize))
	return buf.Bytes()
}

type fakeRecognizer struct {
	req  *speechpb.RecognizeRequest
	resp *speechpb.RecognizeResponse
	err  error
}

func (f *fakeRecognizer) Recognize(_ context.Context, req *speechpb.RecognizeRequest, _ ...gax.CallOption) (*speechpb.RecognizeResponse, error) {
	f.req = req
	return f.resp, f.err
}

func TestParseWaveHeader(t *testing.T) {
	h, err := parseWaveHeader(wav(16000, 2))
	require.NoError(t, err)
	assert.Equal(t, uint32(16000), h.SampleRate)
	assert.Equal(t, 2*time.Second, h.duration())
	assert.True(t, h.recognisable())

	_, err = parseWaveHeader([]byte("short"))
	assert.Error(t, err)

	bad := wav(16000, 1)
	copy(bad, "RIFX")
	_, err = parseWaveHeader(bad)
	assert.Error(t, err)
}

func TestTranscribe(t *testing.T) {
	rec := &fakeRecognizer{resp: &speechpb.RecognizeResponse{
		Results: []*speechpb.SpeechRecognitionResult{
			{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: "I'm going to Japan "}, {Transcript: "I'm going to Jaipur"}}},
			{Alternatives: []*speechpb.SpeechRecognitionAlternative{{Transcript: "next week"}}},
		},
	}}
	tr := &GoogleTranscriber{client: rec}

	text, err := tr.Transcribe(context.Background(), wav(8000, 1), "")
	require.NoError(t, err)
	assert.Equal(t, "I'm going to Japan next week", text)
	assert.Equal(t, int32(8000), rec.req.Config.SampleRateHertz)
	assert.Equal(t, "en-US", rec.req.Config.LanguageCode)

	rec.err = errors.New("quota")
	_, err = tr.Transcribe(context.Background(), wav(8000, 1), "en-GB")
	assert.Error(t, err)
}

func TestTranscribeRejectsLongAudio(t *testing.T) {
	tr := &GoogleTranscriber{client: &fakeRecognizer{}}
	_, err := tr.Transcribe(context.Background(), wav(8000, 61), "en-US")
	assert.ErrorIs(t, err, ErrTooLong)
}

func TestUnavailable(t *testing.T) {
	_, err := Unavailable{}.Transcribe(context.Background(), nil, "")
	assert.ErrorIs(t, err, ErrNotConfigured)
}
