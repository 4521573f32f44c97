package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/pixelcoll"
	"github.com/osuushi/pixelcoll/mask"
)

// Demo of pixel-perfect collision detection on a scene read from stdin. Each
// line places one object in the form "shape x y angle scaleX scaleY", where
// shape is "l" for the reference L mask or "pentagon" for the filled
// pentagon. Objects are numbered by line order, every pair is tested, and
// the colliding pairs are printed.
var (
	bitset = kingpin.Flag("bitset", "Back image masks with bit-packed storage.").Bool()
)

func main() {
	kingpin.Parse()

	infos := readScene(os.Stdin)
	fmt.Printf("Read %d objects\n", len(infos))

	pairs := collidingPairs(infos)
	for _, pair := range pairs {
		fmt.Printf("%d collides with %d\n", pair.ID1, pair.ID2)
	}
	if len(pairs) == 0 {
		fmt.Println("No collisions")
	}
}

func collidingPairs(infos []*pixelcoll.CollisionInfo) []pixelcoll.CollisionPair {
	pairs := []pixelcoll.CollisionPair{}
	for i, info1 := range infos {
		for _, info2 := range infos[i+1:] {
			collides, err := pixelcoll.Collides(info1, info2)
			if err != nil {
				fmt.Fprintf(os.Stderr, "objects %d, %d: %v\n", info1.ID, info2.ID, err)
				continue
			}
			if !collides {
				continue
			}
			pair, err := mask.NewCollisionPair(info1.ID, info2.ID)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				continue
			}
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

func readScene(in *os.File) []*pixelcoll.CollisionInfo {
	infos := []*pixelcoll.CollisionInfo{}
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		info, err := parseObject(line, len(infos))
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %q: %v\n", line, err)
			continue
		}
		infos = append(infos, info)
	}
	return infos
}

func parseObject(line string, id int) (*pixelcoll.CollisionInfo, error) {
	parts := strings.Fields(line)
	if len(parts) != 6 {
		return nil, fmt.Errorf("want 6 fields, got %d", len(parts))
	}

	shape, err := shapeMask(parts[0])
	if err != nil {
		return nil, err
	}

	numbers := make([]float64, 5)
	for i, part := range parts[1:] {
		numbers[i], err = strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, err
		}
	}

	return &pixelcoll.CollisionInfo{
		Mask:     shape,
		Position: pixelcoll.P{X: numbers[0], Y: numbers[1]},
		Angle:    numbers[2],
		ScaleX:   numbers[3],
		ScaleY:   numbers[4],
		ID:       id,
	}, nil
}

func shapeMask(name string) (*pixelcoll.Mask, error) {
	switch name {
	case "l":
		if *bitset {
			return bitsetL()
		}
		return mask.NewL(), nil
	case "pentagon":
		return mask.NewPentagon(), nil
	default:
		return nil, fmt.Errorf("unknown shape %q", name)
	}
}

// bitsetL rebuilds the reference L on bit-packed image storage.
func bitsetL() (*pixelcoll.Mask, error) {
	const width, height = 30, 30

	rows := make([][]bool, height)
	for y := range rows {
		row := make([]bool, width)
		for x := range row {
			row[x] = (x >= 5 && x <= 10) || (x >= 5 && y <= 5)
		}
		rows[y] = row
	}
	return mask.FromImageWithFactory(rows, pixelcoll.P{}, mask.NewBitsetBinaryImage)
}
