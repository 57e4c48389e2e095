package main

import (
	"fmt"
	"log"
	"os"

	"github.com/bytepress/press"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.App{
		Name:  "press",
		Usage: "Compress and decompress files as LZ77 token streams",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Usage: "YAML tuning file"},
			&cli.IntFlag{Name: "window", Usage: "maximum match distance in bytes"},
			&cli.IntFlag{Name: "max-length", Usage: "maximum match length in bytes"},
			&cli.BoolFlag{Name: "lazy", Usage: "enable one-step lazy matching"},
		},
		Commands: []*cli.Command{
			{
				Name:      "compress",
				Usage:     "Compress a file",
				ArgsUsage: "INPUT OUTPUT",
				Action:    compressFile,
			},
			{
				Name:      "decompress",
				Usage:     "Decompress a file",
				ArgsUsage: "INPUT OUTPUT",
				Action:    decompressFile,
			},
			{
				Name:      "inspect",
				Usage:     "Print the token stream of a compressed file",
				ArgsUsage: "INPUT",
				Action:    inspectFile,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatalf("fatal error: %s", err.Error())
	}
}

// loadOptions merges the tuning file, environment overrides, and command
// line flags, in increasing order of precedence.
func loadOptions(c *cli.Context) (press.Options, error) {
	cfg, err := loadConfig(c.String("config"))
	if err != nil {
		return press.Options{}, err
	}
	if c.IsSet("window") {
		cfg.Window = c.Int("window")
	}
	if c.IsSet("max-length") {
		cfg.MaxLength = c.Int("max-length")
	}
	if c.IsSet("lazy") {
		cfg.Lazy = c.Bool("lazy")
	}
	return cfg.options(), nil
}

func compressFile(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: press compress INPUT OUTPUT")
	}
	opts, err := loadOptions(c)
	if err != nil {
		return err
	}
	src, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	out, err := press.Compress(nil, src, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.Args().Get(1), out, 0o644); err != nil {
		return err
	}
	log.Printf("compressed %d -> %d bytes", len(src), len(out))
	return nil
}

func decompressFile(c *cli.Context) error {
	if c.NArg() != 2 {
		return fmt.Errorf("usage: press decompress INPUT OUTPUT")
	}
	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	out, err := press.Decompress(nil, data)
	if err != nil {
		return err
	}
	return os.WriteFile(c.Args().Get(1), out, 0o644)
}

func inspectFile(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("usage: press inspect INPUT")
	}
	data, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return err
	}
	h, tokens, err := press.Decode(data)
	if err != nil {
		return err
	}
	fmt.Printf("version %d, %d tokens, %d raw bytes, offset/length widths %d/%d\n",
		h.Version, h.Tokens, h.RawSize, h.OffsetBits, h.LengthBits)
	os.Stdout.Write(press.TextEncoder{}.Encode(nil, tokens))
	fmt.Println()
	return nil
}
