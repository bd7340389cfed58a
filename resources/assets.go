package resources

import (
	"bytes"
	"encoding/binary"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	alertName  = "achieved_alarm.wav"
	sampleRate = 22050
)

var toneCache sync.Map

// chime is the note sequence of the achievement cue: frequency in Hz and
// length in milliseconds.
var chime = []struct {
	frequency float64
	millis    int
}{
	{frequency: 880, millis: 160},
	{frequency: 1175, millis: 160},
	{frequency: 1568, millis: 320},
}

// AlertSound returns the achievement cue as a Fyne resource.
func AlertSound() fyne.Resource {
	if cached, ok := toneCache.Load(alertName); ok {
		return cached.(fyne.Resource)
	}
	resource := fyne.NewStaticResource(alertName, AlertTone())
	toneCache.Store(alertName, resource)
	return resource
}

// AppIcon returns the application and tray icon.
func AppIcon() fyne.Resource {
	return theme.HistoryIcon()
}

// TrophyIcon returns the icon shown with an achievement.
func TrophyIcon() fyne.Resource {
	return theme.ConfirmIcon()
}

// SparkleIcon is the alternate trophy animation frame.
func SparkleIcon() fyne.Resource {
	return theme.InfoIcon()
}

// AlertTone renders the chime as a 16-bit mono PCM WAV file.
func AlertTone() []byte {
	var samples []int16
	for _, note := range chime {
		count := sampleRate * note.millis / 1000
		for index := 0; index < count; index++ {
			// linear fade out per note avoids clicks between notes
			envelope := 1 - float64(index)/float64(count)
			value := math.Sin(2*math.Pi*note.frequency*float64(index)/sampleRate) * envelope * 0.6
			samples = append(samples, int16(value*math.MaxInt16))
		}
	}

	dataSize := uint32(len(samples) * 2)
	var buffer bytes.Buffer
	buffer.WriteString("RIFF")
	_ = binary.Write(&buffer, binary.LittleEndian, 36+dataSize)
	buffer.WriteString("WAVE")
	buffer.WriteString("fmt ")
	_ = binary.Write(&buffer, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buffer, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buffer, binary.LittleEndian, uint16(1))
	_ = binary.Write(&buffer, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buffer, binary.LittleEndian, uint32(sampleRate*2))
	_ = binary.Write(&buffer, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buffer, binary.LittleEndian, uint16(16))
	buffer.WriteString("data")
	_ = binary.Write(&buffer, binary.LittleEndian, dataSize)
	_ = binary.Write(&buffer, binary.LittleEndian, samples)
	return buffer.Bytes()
}
