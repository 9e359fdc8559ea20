// Package element loads decks and spreads from a path that is either a single
// file or a directory of candidate files.
//
// Decoding is dispatched on the file extension through a fixed table. When a
// directory holds several candidates the user is asked to choose one.
package element

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/arcanaland/termtarot/internal/deck"
	"github.com/arcanaland/termtarot/internal/prompt"
	"github.com/arcanaland/termtarot/internal/spread"
)

var (
	ErrNoExtension          = errors.New("need a file extension to determine deserialization method")
	ErrUnsupportedExtension = errors.New("don't know how to deserialize file type")
	ErrNoCandidates         = errors.New("no candidate files found")
	ErrInvalidSelection     = errors.New("selection out of range")
)

// Named is the capability every loadable element shares
type Named interface {
	Label() string
}

// element constrains load to pointer types of the known element kinds
type element[T any] interface {
	*T
	Named
}

type decodeFunc func(data []byte, v any) error

// decoders maps a file extension, without the dot, to its decoder
var decoders = map[string]decodeFunc{
	"json": decodeJSON,
}

// decodeJSON accepts JSON with comments and trailing commas
func decodeJSON(data []byte, v any) error {
	return json.Unmarshal(jsonc.ToJSON(data), v)
}

// LoadDeck loads a single deck from path
func LoadDeck(path string, sel prompt.Selector) (*deck.Deck, error) {
	return load[deck.Deck](path, sel)
}

// LoadSpread loads a single spread from path
func LoadSpread(path string, sel prompt.Selector) (*spread.Spread, error) {
	return load[spread.Spread](path, sel)
}

// DeckCandidates returns every deck found at path
func DeckCandidates(path string) ([]*deck.Deck, error) {
	return Candidates[deck.Deck](path)
}

// SpreadCandidates returns every spread found at path
func SpreadCandidates(path string) ([]*spread.Spread, error) {
	return Candidates[spread.Spread](path)
}

func load[T any, P element[T]](path string, sel prompt.Selector) (P, error) {
	found, err := Candidates[T, P](path)
	if err != nil {
		return nil, err
	}

	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w in %s", ErrNoCandidates, path)
	case 1:
		return found[0], nil
	}

	labels := make([]string, len(found))
	for i, c := range found {
		labels[i] = c.Label()
	}

	idx, err := sel.Select("Make a selection:", labels)
	if err != nil {
		return nil, fmt.Errorf("error at menu select: %w", err)
	}
	if idx < 0 || idx >= len(found) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSelection, idx)
	}

	return found[idx], nil
}

// Candidates decodes the file at path, or every regular file below path when
// it is a directory, in lexical walk order. A symlinked path is followed;
// symlinks found below it are not.
func Candidates[T any, P element[T]](path string) ([]P, error) {
	// WalkDir does not descend into a root that is a symlink
	root, err := filepath.EvalSymlinks(path)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("error opening %s: %w", path, err)
	}

	if !info.IsDir() {
		v, err := decodeElement[T, P](path)
		if err != nil {
			return nil, err
		}
		return []P{v}, nil
	}

	var found []P
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			slog.Debug("skipping unreadable entry", "path", p, "error", walkErr)
			return nil
		}
		// Symlinks are not followed
		if !d.Type().IsRegular() {
			if !d.IsDir() {
				slog.Debug("skipping non-regular entry", "path", p)
			}
			return nil
		}

		v, err := decodeElement[T, P](p)
		if err != nil {
			return err
		}
		found = append(found, v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return found, nil
}

func decodeElement[T any, P element[T]](path string) (P, error) {
	v := P(new(T))
	if err := DecodeFile(path, v); err != nil {
		return nil, err
	}
	return v, nil
}

// DecodeFile reads path and decodes it into v using the decoder registered
// for its extension.
func DecodeFile(path string, v any) error {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return fmt.Errorf("%w: %s", ErrNoExtension, path)
	}

	decode, ok := decoders[ext]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnsupportedExtension, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %w", path, err)
	}

	if err := decode(data, v); err != nil {
		return fmt.Errorf("error parsing %s: %w", path, err)
	}

	return nil
}
