package language

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEnglish(t *testing.T) {
	detector := NewDetector()

	code := detector.Detect("Every person must, in the exercise of his rights and in the " +
		"performance of his duties, act with justice, give everyone his due, and observe " +
		"honesty and good faith.")

	assert.Equal(t, "en", code)
}

func TestDetectTagalog(t *testing.T) {
	detector := NewDetector()

	code := detector.Detect("Ang bawat tao ay dapat, sa paggamit ng kanyang mga karapatan " +
		"at sa pagtupad ng kanyang mga tungkulin, kumilos nang may katarungan, bigyan ang " +
		"bawat isa ng kanyang karapatdapat, at sundin ang katapatan at mabuting pananampalataya.")

	assert.Equal(t, "tl", code)
}

func TestDetectDeterministic(t *testing.T) {
	detector := NewDetector()
	text := "This is a test legal document for upload testing."

	first := detector.Detect(text)
	require.NotEqual(t, Unknown, first)

	for i := 0; i < 5; i++ {
		assert.Equal(t, first, detector.Detect(text))
	}
}

func TestDetectDegenerateInput(t *testing.T) {
	detector := NewDetector()

	assert.Equal(t, Unknown, detector.Detect(""))
	assert.Equal(t, Unknown, detector.Detect("   \n\t "))
	assert.Equal(t, Unknown, detector.Detect("1234567890"))
	assert.Equal(t, Unknown, detector.Detect("42 + 17 = 59"))
}

func TestDetectTruncatesLongInput(t *testing.T) {
	detector := NewDetector()

	long := strings.Repeat("The quick brown fox jumps over the lazy dog. ", 200)
	short := truncateRunes(long, maxSampleRunes)

	assert.Equal(t, detector.Detect(short), detector.Detect(long))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "ab", truncateRunes("abcde", 2))
	assert.Equal(t, "héll", truncateRunes("héllo", 4))
}
