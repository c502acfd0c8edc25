package main

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	// Bytes per frame: 16-bit little endian, two channels.
	bytesPerFrame = 4
	amplitude     = 0.4
)

// tone is a MIDI note number held for a number of beats. Note 0 is a rest.
type tone struct {
	note  int
	beats float64
}

// Korobeiniki, first phrase.
var theme = []tone{
	{76, 1}, {71, 0.5}, {72, 0.5}, {74, 1}, {72, 0.5}, {71, 0.5},
	{69, 1}, {69, 0.5}, {72, 0.5}, {76, 1}, {74, 0.5}, {72, 0.5},
	{71, 1.5}, {72, 0.5}, {74, 1}, {76, 1},
	{72, 1}, {69, 1}, {69, 1}, {0, 1},
}

var gameOverJingle = []tone{
	{72, 0.25}, {67, 0.25}, {64, 0.25}, {0, 0.25},
	{69, 0.5}, {71, 0.5}, {69, 0.5},
	{68, 0.5}, {70, 0.5}, {68, 0.5},
	{67, 0.25}, {65, 0.25}, {67, 1},
}

func frequency(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// synthesize renders tones as sine waves into 16-bit stereo PCM. Each tone
// fades out over its last tenth to avoid clicks between notes.
func synthesize(tones []tone, bpm float64) []byte {
	framesPerBeat := sampleRate * 60 / bpm

	var pcm []byte
	for _, t := range tones {
		count := int(t.beats * framesPerBeat)
		release := max(count/10, 1)
		freq := frequency(t.note)

		for i := 0; i < count; i++ {
			var v float64
			if t.note > 0 {
				v = math.Sin(2*math.Pi*freq*float64(i)/sampleRate) * amplitude
				if remaining := count - i; remaining < release {
					v *= float64(remaining) / float64(release)
				}
			}
			sample := uint16(int16(v * math.MaxInt16))
			pcm = binary.LittleEndian.AppendUint16(pcm, sample)
			pcm = binary.LittleEndian.AppendUint16(pcm, sample)
		}
	}
	return pcm
}

// soundBoard plays the looping background theme and the game over jingle.
type soundBoard struct {
	context  *audio.Context
	music    *audio.Player
	gameOver *audio.Player
}

func newSoundBoard(musicVolume, sfxVolume float64) (*soundBoard, error) {
	ctx := audio.NewContext(sampleRate)

	themePCM := synthesize(theme, 144)
	music, err := ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(themePCM), int64(len(themePCM))))
	if err != nil {
		return nil, fmt.Errorf("creating music player: %w", err)
	}
	music.SetVolume(musicVolume)

	gameOver := ctx.NewPlayerFromBytes(synthesize(gameOverJingle, 160))
	gameOver.SetVolume(sfxVolume)

	return &soundBoard{
		context:  ctx,
		music:    music,
		gameOver: gameOver,
	}, nil
}

func (s *soundBoard) playMusic() {
	if !s.music.IsPlaying() {
		s.music.Play()
	}
}

func (s *soundBoard) playGameOver() error {
	if err := s.gameOver.Rewind(); err != nil {
		return err
	}
	s.gameOver.Play()
	return nil
}
