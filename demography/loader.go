package demography

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
)

// File names of the table set, relative to the root handed to Load.
const (
	FileLifeExpectancy = "life_expectancy.csv"
	FileFirstNames     = "first_names.csv"
	FileGender         = "gender_name_probability.csv"
	FileLastNames      = "last_names.csv"
	FileRankProb       = "rank_to_probability.csv"
	FileRates          = "birth_and_marriage_rates.csv"
)

// LoadDir reads the table set from the directory dir.
func LoadDir(dir string) (*Tables, error) {
	return Load(os.DirFS(dir))
}

// Load reads all six table files from fsys and assembles a Tables.
// Any unreadable file or malformed record aborts loading; errors name the
// file and line and wrap ErrMalformedRecord or the underlying fs error.
func Load(fsys fs.FS) (*Tables, error) {
	t := NewTables()
	steps := []struct {
		name   string
		header bool
		fields int
		row    func(rec []string) error
	}{
		{FileLifeExpectancy, true, 2, t.lifeRow},
		{FileFirstNames, true, 4, t.firstNameRow},
		{FileGender, true, 3, t.genderRow},
		{FileLastNames, true, 3, t.lastNameRow},
		{FileRankProb, false, -1, t.rankRow},
		{FileRates, true, 3, t.rateRow},
	}
	for _, s := range steps {
		if err := readCSV(fsys, s.name, s.header, s.fields, s.row); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// readCSV streams name through row, skipping the header line when asked.
// fields < 0 disables the per-record field count check.
func readCSV(fsys fs.FS, name string, header bool, fields int, row func([]string) error) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("demography: open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	for first := true; ; first = false {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s: %v: %w", name, err, ErrMalformedRecord)
		}
		if first && header {
			continue
		}
		line, _ := r.FieldPos(0)
		if fields >= 0 && len(rec) != fields {
			return fmt.Errorf("%s:%d: want %d fields, got %d: %w",
				name, line, fields, len(rec), ErrMalformedRecord)
		}
		if err = row(rec); err != nil {
			return fmt.Errorf("%s:%d: %w", name, line, err)
		}
	}
}

func (t *Tables) lifeRow(rec []string) error {
	year, err := parseInt(rec[0])
	if err != nil {
		return err
	}
	le, err := parseFloat(rec[1])
	if err != nil {
		return err
	}
	t.Life[year] = le

	return nil
}

func (t *Tables) firstNameRow(rec []string) error {
	decade, gender, name := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1]), strings.TrimSpace(rec[2])
	freq, err := parseFloat(rec[3])
	if err != nil {
		return err
	}
	if _, err = DecadeStart(decade); err != nil {
		return fmt.Errorf("%v: %w", err, ErrMalformedRecord)
	}
	if t.First[decade] == nil {
		t.First[decade] = make(map[string][]Weighted)
	}
	t.First[decade][gender] = append(t.First[decade][gender], Weighted{Name: name, Weight: freq})

	return nil
}

func (t *Tables) genderRow(rec []string) error {
	decade, gender := strings.TrimSpace(rec[0]), strings.TrimSpace(rec[1])
	p, err := parseFloat(rec[2])
	if err != nil {
		return err
	}
	if _, err = DecadeStart(decade); err != nil {
		return fmt.Errorf("%v: %w", err, ErrMalformedRecord)
	}
	t.Gender[decade] = append(t.Gender[decade], Weighted{Name: gender, Weight: p})

	return nil
}

func (t *Tables) lastNameRow(rec []string) error {
	decade := strings.TrimSpace(rec[0])
	rank, err := parseInt(rec[1])
	if err != nil {
		return err
	}
	if _, err = DecadeStart(decade); err != nil {
		return fmt.Errorf("%v: %w", err, ErrMalformedRecord)
	}
	t.Last[decade] = append(t.Last[decade], RankedName{Name: strings.TrimSpace(rec[2]), Rank: rank})

	return nil
}

// rankRow consumes the single line of rank probabilities; rank 1 is first.
func (t *Tables) rankRow(rec []string) error {
	if len(t.RankProbability) > 0 {
		return fmt.Errorf("more than one probability line: %w", ErrMalformedRecord)
	}
	probs := make([]float64, len(rec))
	for i, s := range rec {
		p, err := parseFloat(s)
		if err != nil {
			return err
		}
		probs[i] = p
	}
	t.RankProbability = probs

	return nil
}

func (t *Tables) rateRow(rec []string) error {
	decade := strings.TrimSpace(rec[0])
	birth, err := parseFloat(rec[1])
	if err != nil {
		return err
	}
	marriage, err := parseFloat(rec[2])
	if err != nil {
		return err
	}
	if _, err = DecadeStart(decade); err != nil {
		return fmt.Errorf("%v: %w", err, ErrMalformedRecord)
	}
	t.Rate[decade] = Rates{Birth: birth, Marriage: marriage}

	return nil
}

func parseInt(s string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("integer %q: %w", s, ErrMalformedRecord)
	}

	return v, nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("number %q: %w", s, ErrMalformedRecord)
	}

	return v, nil
}
