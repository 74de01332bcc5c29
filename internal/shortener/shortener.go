package shortener

import "github.com/sqids/sqids-go"

const minKeyLength = 6

// Shortener turns sequential store ids into short, URL-safe keys.
type Shortener struct {
	sqids *sqids.Sqids
}

func New() (*Shortener, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: minKeyLength,
	})
	if err != nil {
		return nil, err
	}
	return &Shortener{sqids: s}, nil
}

func (s *Shortener) Generate(id uint) (string, error) {
	return s.sqids.Encode([]uint64{uint64(id)})
}
