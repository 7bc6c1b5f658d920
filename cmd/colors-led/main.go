// Command colors-led streams hue wheel colors down an APA102 compatible LED
// strip connected over SPI.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/colors"
	"github.com/BeatGlow/colors/led"
)

func main() {
	portFlag := flag.String("spi", "", "SPI port name (default: use first available)")
	hzFlag := flag.Int("hz", 8_000_000, "SPI clock frequency in Hz")
	countFlag := flag.Int("n", led.DefaultConfig.Count, "number of LEDs on the strip")
	brightnessFlag := flag.Uint("brightness", led.MaxBrightness, "global brightness (0-31)")
	intervalFlag := flag.Duration("interval", 250*time.Millisecond, "time between steps")
	startFlag := flag.Float64("start", 0, "starting phase on the hue wheel")
	seedFlag := flag.Int64("seed", 0, "random seed (0 seeds from the clock)")
	flag.Parse()

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	strip, err := led.Open(&led.Config{
		Port:       *portFlag,
		Hz:         physic.Frequency(*hzFlag) * physic.Hertz,
		Brightness: uint8(*brightnessFlag),
		Count:      *countFlag,
	})
	if err != nil {
		fatal(err)
	}
	defer strip.Close()
	fmt.Println("using", strip)

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	wheel := colors.NewWheel(*startFlag, rand.New(rand.NewSource(seed)))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)

	ticker := time.NewTicker(*intervalFlag)
	defer ticker.Stop()

	fmt.Println("hit control-c to stop...")
	pixels := make([]colors.Color, 0, strip.Count())
	for {
		if len(pixels) == strip.Count() {
			copy(pixels, pixels[1:])
			pixels = pixels[:len(pixels)-1]
		}
		pixels = append(pixels, wheel.Next())
		if err = strip.Set(pixels); err != nil {
			fatal(err)
		}

		select {
		case <-stop:
			return
		case <-ticker.C:
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
