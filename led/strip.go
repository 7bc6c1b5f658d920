// Package led drives APA102/SK9822 compatible LED strips over SPI, using
// [colors.Color] values as pixels.
package led

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"

	"github.com/BeatGlow/colors"
)

// MaxBrightness is the highest global brightness level the strip protocol
// supports (5 bits).
const MaxBrightness = 31

// Errors
var (
	ErrCount      = errors.New("led: strip LED count must be positive")
	ErrBrightness = fmt.Errorf("led: brightness must be at most %d", MaxBrightness)
)

// Config describes the strip configuration.
type Config struct {
	// Port is the SPI port name, empty for the first available port.
	Port string

	// Hz is the SPI clock frequency.
	Hz physic.Frequency

	// Brightness is the global brightness level, 0 to [MaxBrightness].
	Brightness uint8

	// Count is the number of LEDs on the strip.
	Count int
}

// DefaultConfig are the default configuration values.
var DefaultConfig = Config{
	Hz:         8 * physic.MegaHertz,
	Brightness: MaxBrightness,
	Count:      30,
}

// Strip is an open LED strip.
type Strip struct {
	port       spi.PortCloser
	conn       spi.Conn
	count      int
	brightness uint8
}

// Open opens the configured SPI port and returns a strip ready for
// [Strip.Set]. A nil config selects [DefaultConfig].
func Open(config *Config) (*Strip, error) {
	if config == nil {
		config = new(Config)
		*config = DefaultConfig
	}

	if config.Count <= 0 {
		return nil, ErrCount
	}
	if config.Brightness > MaxBrightness {
		return nil, ErrBrightness
	}
	if config.Hz == 0 {
		config.Hz = DefaultConfig.Hz
	}

	port, err := spireg.Open(config.Port)
	if err != nil {
		return nil, err
	}

	conn, err := port.Connect(config.Hz, spi.Mode0, 8)
	if err != nil {
		_ = port.Close()
		return nil, err
	}

	return &Strip{
		port:       port,
		conn:       conn,
		count:      config.Count,
		brightness: config.Brightness,
	}, nil
}

func (s *Strip) String() string {
	return fmt.Sprintf("strip with %d LEDs on %s", s.count, s.conn)
}

// Count returns the number of LEDs on the strip.
func (s *Strip) Count() int {
	return s.count
}

// Set writes the given colors to the strip, first color first. If fewer
// colors than LEDs are given the remainder is turned off; excess colors are
// ignored.
func (s *Strip) Set(pixels []colors.Color) error {
	return s.conn.Tx(frame(pixels, s.count, s.brightness), nil)
}

// Off turns all LEDs off.
func (s *Strip) Off() error {
	return s.Set(nil)
}

// Close turns the strip off and closes the SPI port.
func (s *Strip) Close() error {
	err := s.Off()
	if cerr := s.port.Close(); err == nil {
		err = cerr
	}
	return err
}

// frame encodes a full strip update: a 4-byte start frame, one
// brightness+BGR frame per LED, and enough end-frame clocking for the last
// LED to latch.
func frame(pixels []colors.Color, count int, brightness uint8) []byte {
	end := (count + 15) / 16 // one clock edge per two LEDs
	buf := make([]byte, 0, 4+4*count+end)
	buf = append(buf, 0x00, 0x00, 0x00, 0x00)
	for i := 0; i < count; i++ {
		var r, g, b int
		if i < len(pixels) {
			r, g, b = pixels[i].RGB()
		}
		buf = append(buf, 0xE0|brightness, byte(b), byte(g), byte(r))
	}
	for i := 0; i < end; i++ {
		buf = append(buf, 0xff)
	}
	return buf
}
