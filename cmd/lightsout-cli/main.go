package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"lightsout/internal/app"
	"lightsout/internal/game"
	"lightsout/internal/settings"
	"lightsout/pkg/lightsout"
)

func main() {
	var opts app.Options
	opts.Bind(flag.CommandLine)
	flag.Parse()

	store, err := settings.Open()
	if err != nil {
		log.Printf("[settings] %v (settings will not persist)", err)
	}
	cfg, err := opts.Resolve(store)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	session, err := game.NewSession(cfg)
	if err != nil {
		log.Fatalf("new board: %v", err)
	}

	solved, err := play(os.Stdin, os.Stdout, session)
	if err != nil {
		log.Fatal(err)
	}
	if !solved {
		os.Exit(1)
	}
}

// play reads "row col" moves from in until the board is solved or input ends.
func play(in io.Reader, out io.Writer, s *game.Session) (bool, error) {
	printBoard(out, s)
	scanner := bufio.NewScanner(in)
	for !s.Complete() {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch line {
		case "":
			continue
		case "q", "quit":
			return false, nil
		}
		row, col, err := parseMove(line)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if err := s.Activate(row, col); err != nil {
			var oor *lightsout.OutOfRangeError
			if errors.As(err, &oor) {
				fmt.Fprintf(out, "%s must be between %d and %d\n", oor.Arg, oor.Min, oor.Max)
				continue
			}
			return false, err
		}
		printBoard(out, s)
	}
	if err := scanner.Err(); err != nil {
		return false, fmt.Errorf("read moves: %w", err)
	}
	snap := s.Snapshot()
	if snap.Complete {
		fmt.Fprintf(out, "solved in %d moves\n", snap.Moves)
	}
	return snap.Complete, nil
}

func parseMove(line string) (int, int, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected \"row col\", got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad col %q", fields[1])
	}
	return row, col, nil
}

func printBoard(out io.Writer, s *game.Session) {
	snap := s.Snapshot()
	fmt.Fprint(out, s.Board())
	fmt.Fprintf(out, "lit %d  moves %d\n", snap.Lit, snap.Moves)
}
