package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/corrinlakeland/dmgcore"
	"github.com/corrinlakeland/dmgcore/render"
)

func main() {
	app := cli.NewApp()
	app.Name = "dmgcore"
	app.Description = "A Game Boy (DMG) core"
	app.Usage = "dmgcore [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "boot-rom",
			Usage: "Path to a 256-byte boot ROM image (optional)",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without the terminal front-end",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("dmgcore exited with an error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	romData, err := os.ReadFile(romPath)
	if err != nil {
		return err
	}

	emu := dmgcore.New()
	if err := emu.LoadCartridge(romData); err != nil {
		return err
	}

	if bootPath := c.String("boot-rom"); bootPath != "" {
		bootData, err := os.ReadFile(bootPath)
		if err != nil {
			return err
		}
		emu.LoadBootROM(bootData)
	}

	if c.Bool("headless") {
		return runHeadless(emu, c.Int("frames"))
	}

	term, err := render.New(emu)
	if err != nil {
		return err
	}
	return term.Run()
}

func runHeadless(emu *dmgcore.Emulator, frames int) error {
	if frames <= 0 {
		return errors.New("headless mode requires --frames with a positive value")
	}

	for i := 0; i < frames; i++ {
		for !emu.HasFrame() {
			emu.Step()
		}
		emu.ConsumeFrame()

		if (i+1)%60 == 0 {
			slog.Info("frame progress", "completed", i+1, "total", frames)
		}
	}

	slog.Info("headless execution completed", "frames", frames, "serial_output", emu.SerialOutput())
	return nil
}
