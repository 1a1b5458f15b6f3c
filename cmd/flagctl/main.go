package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"

	"github.com/tanklash/flagwire/internal/config"
	"github.com/tanklash/flagwire/internal/flags"
	"github.com/tanklash/flagwire/internal/logging"
)

func main() {
	logging.ConfigureRuntime()
	list := pflag.Bool("list", false, "list all registered flag types")
	info := pflag.String("info", "", "show details for one abbreviation")
	decode := pflag.String("decode", "", "decode a hex-encoded instance record")
	customFile := pflag.String("custom", "", "TOML file of custom flag types to register first")
	pflag.Parse()

	if err := run(os.Stdout, *list, *info, *decode, *customFile); err != nil {
		fmt.Fprintf(os.Stderr, "flagctl: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, list bool, info, decode, customFile string) error {
	reg, err := buildRegistry(customFile)
	if err != nil {
		return err
	}

	ran := false
	if list {
		listFlags(w, reg)
		ran = true
	}
	if info != "" {
		if err := showInfo(w, reg, info); err != nil {
			return err
		}
		ran = true
	}
	if decode != "" {
		if err := decodeRecord(w, reg, decode); err != nil {
			return err
		}
		ran = true
	}
	if !ran {
		return fmt.Errorf("nothing to do; try --list, --info, or --decode")
	}
	return nil
}

func buildRegistry(customFile string) (*flags.Registry, error) {
	reg := flags.NewRegistry()
	if customFile == "" {
		return reg, nil
	}
	defs, err := config.LoadFlagTypes(customFile)
	if err != nil {
		return nil, err
	}
	for _, ft := range defs {
		if _, err := reg.RegisterCustom(ft); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func listFlags(w io.Writer, reg *flags.Registry) {
	sections := []struct {
		title string
		list  []*flags.Type
	}{
		{"good", reg.GoodFlags()},
		{"bad", reg.BadFlags()},
		{"custom", reg.CustomFlags()},
	}
	for _, section := range sections {
		if len(section.list) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", section.title)
		for _, ft := range section.list {
			fmt.Fprintf(w, "  %-2s  %s\n", ft.Abbrev, ft.Name)
		}
	}
}

func showInfo(w io.Writer, reg *flags.Registry, abbrev string) error {
	ft, ok := reg.Lookup(abbrev)
	if !ok {
		return fmt.Errorf("unknown abbreviation %q", abbrev)
	}
	fmt.Fprintln(w, ft.Information())
	fmt.Fprintf(w, "  endurance: %s  quality: %s  shot: %s  team: %s  effect: %s\n",
		ft.Endurance, ft.Quality, ft.Shot, ft.Team, ft.Effect)
	return nil
}

func decodeRecord(w io.Writer, reg *flags.Registry, record string) error {
	raw, err := hex.DecodeString(record)
	if err != nil {
		return fmt.Errorf("record is not valid hex: %w", err)
	}
	var fi flags.Instance
	if err := fi.Unpack(raw, reg); err != nil {
		return err
	}

	fmt.Fprintf(w, "type: %s (%s)\n", fi.Type.Name, fi.Type.Abbrev)
	fmt.Fprintf(w, "status: %s  endurance: %s", fi.Status, fi.Endurance)
	if fi.Status == flags.StatusCarried {
		fmt.Fprintf(w, "  owner: %d", fi.Owner)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "position: %v\n", fi.Position)
	if fi.Status == flags.StatusInFlight {
		fmt.Fprintf(w, "flight: %v -> %v  t=%g/%g  v0=%g\n",
			fi.LaunchPosition, fi.LandingPosition, fi.FlightTime, fi.FlightEnd, fi.InitialVelocity)
	}
	return nil
}
