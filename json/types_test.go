// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package json_test

import (
	"maps"
	"slices"

	"github.com/creachadair/jcodec"
)

// Types used by the encoder and decoder tests.

type point struct{ X, Y int64 }

func (p point) Encode(e jcodec.Emitter) error {
	return e.EmitStruct("Point", 2, func(e jcodec.Emitter) error {
		if err := e.EmitStructField("x", 0, func(e jcodec.Emitter) error {
			return e.EmitInt64(p.X)
		}); err != nil {
			return err
		}
		return e.EmitStructField("y", 1, func(e jcodec.Emitter) error {
			return e.EmitInt64(p.Y)
		})
	})
}

func (p *point) Decode(c jcodec.Consumer) error {
	return c.ReadStruct("Point", 2, func(c jcodec.Consumer) error {
		if err := c.ReadStructField("x", 0, func(c jcodec.Consumer) (err error) {
			p.X, err = c.ReadInt64()
			return
		}); err != nil {
			return err
		}
		return c.ReadStructField("y", 1, func(c jcodec.Consumer) (err error) {
			p.Y, err = c.ReadInt64()
			return
		})
	})
}

// shape is an enumeration with variants Empty, Circle(r), and Rect(w, h).
type shape struct {
	Kind string
	Args []float64
}

var shapeNames = []string{"Empty", "Circle", "Rect"}

func (s shape) Encode(e jcodec.Emitter) error {
	id := 0
	for i, name := range shapeNames {
		if name == s.Kind {
			id = i
		}
	}
	return e.EmitEnumVariant(s.Kind, id, len(s.Args), func(e jcodec.Emitter) error {
		for i, arg := range s.Args {
			if err := e.EmitEnumVariantArg(i, func(e jcodec.Emitter) error {
				return e.EmitFloat64(arg)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *shape) Decode(c jcodec.Consumer) error {
	return c.ReadEnumVariant(shapeNames, func(c jcodec.Consumer, idx int) error {
		s.Kind, s.Args = shapeNames[idx], nil
		if idx > 0 {
			s.Args = make([]float64, idx)
		}
		for i := range idx {
			if err := c.ReadEnumVariantArg(i, func(c jcodec.Consumer) (err error) {
				s.Args[i], err = c.ReadFloat64()
				return
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// record exercises sequences, maps, options, and nested structs.
type record struct {
	Name  string
	Tags  []string
	Score map[uint64]float64
	Home  *point
	Shape shape
}

func (r record) Encode(e jcodec.Emitter) error {
	return e.EmitStruct("Record", 5, func(e jcodec.Emitter) error {
		if err := e.EmitStructField("name", 0, func(e jcodec.Emitter) error {
			return e.EmitString(r.Name)
		}); err != nil {
			return err
		}
		if err := e.EmitStructField("tags", 1, stringList(r.Tags).Encode); err != nil {
			return err
		}
		if err := e.EmitStructField("score", 2, func(e jcodec.Emitter) error {
			return encodeScores(e, r.Score)
		}); err != nil {
			return err
		}
		if err := e.EmitStructField("home", 3, func(e jcodec.Emitter) error {
			return e.EmitOption(func(e jcodec.Emitter) error {
				if r.Home == nil {
					return e.EmitOptionNone()
				}
				return e.EmitOptionSome(r.Home.Encode)
			})
		}); err != nil {
			return err
		}
		return e.EmitStructField("shape", 4, r.Shape.Encode)
	})
}

func (r *record) Decode(c jcodec.Consumer) error {
	return c.ReadStruct("Record", 5, func(c jcodec.Consumer) error {
		if err := c.ReadStructField("name", 0, func(c jcodec.Consumer) (err error) {
			r.Name, err = c.ReadString()
			return
		}); err != nil {
			return err
		}
		if err := c.ReadStructField("tags", 1, (*stringList)(&r.Tags).Decode); err != nil {
			return err
		}
		if err := c.ReadStructField("score", 2, func(c jcodec.Consumer) error {
			return c.ReadMap(func(c jcodec.Consumer, n int) error {
				r.Score = make(map[uint64]float64, n)
				for i := range n {
					var key uint64
					if err := c.ReadMapKey(i, func(c jcodec.Consumer) (err error) {
						key, err = c.ReadUint64()
						return
					}); err != nil {
						return err
					}
					if err := c.ReadMapValue(i, func(c jcodec.Consumer) error {
						f, err := c.ReadFloat64()
						r.Score[key] = f
						return err
					}); err != nil {
						return err
					}
				}
				return nil
			})
		}); err != nil {
			return err
		}
		if err := c.ReadStructField("home", 3, func(c jcodec.Consumer) error {
			return c.ReadOption(func(c jcodec.Consumer, ok bool) error {
				if !ok {
					r.Home = nil
					return nil
				}
				r.Home = new(point)
				return r.Home.Decode(c)
			})
		}); err != nil {
			return err
		}
		return c.ReadStructField("shape", 4, r.Shape.Decode)
	})
}

// encodeScores emits m with its keys in increasing order.
func encodeScores(e jcodec.Emitter, m map[uint64]float64) error {
	keys := slices.Sorted(maps.Keys(m))
	return e.EmitMap(len(keys), func(e jcodec.Emitter) error {
		for i, k := range keys {
			if err := e.EmitMapKey(i, func(e jcodec.Emitter) error {
				return e.EmitUint64(k)
			}); err != nil {
				return err
			}
			if err := e.EmitMapValue(i, func(e jcodec.Emitter) error {
				return e.EmitFloat64(m[k])
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// stringList is a sequence of strings.
type stringList []string

func (s stringList) Encode(e jcodec.Emitter) error {
	return e.EmitSeq(len(s), func(e jcodec.Emitter) error {
		for i, elt := range s {
			if err := e.EmitSeqElt(i, func(e jcodec.Emitter) error {
				return e.EmitString(elt)
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *stringList) Decode(c jcodec.Consumer) error {
	return c.ReadSeq(func(c jcodec.Consumer, n int) error {
		*s = make([]string, n)
		for i := range n {
			if err := c.ReadSeqElt(i, func(c jcodec.Consumer) (err error) {
				(*s)[i], err = c.ReadString()
				return
			}); err != nil {
				return err
			}
		}
		return nil
	})
}
