/*
 Chunkgen, an orchestrator for automated Minecraft world chunk generation.
 Copyright (C) 2026 Chunkgen Authors

 This program is free software: you can redistribute it and/or modify
 it under the terms of the GNU Affero General Public License as published by
 the Free Software Foundation, either version 3 of the License, or
 (at your option) any later version.

 This program is distributed in the hope that it will be useful,
 but WITHOUT ANY WARRANTY; without even the implied warranty of
 MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 GNU Affero General Public License for more details.

 You should have received a copy of the GNU Affero General Public License
 along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package nbt decodes the tagged binary format chunk payloads are stored
// in. No repo in the retrieval pack carries an NBT library (the closest,
// original_source's fastnbt/fastanvil, is a Rust-only dependency), so this
// is a from-scratch reader grounded on the tag layout original_source's
// region_loader.rs consumes through fastnbt: an untyped Compound/List tree
// of scalars, arrays and nested compounds.
package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
)

type TagType byte

const (
	TagEnd TagType = iota
	TagByte
	TagShort
	TagInt
	TagLong
	TagFloat
	TagDouble
	TagByteArray
	TagString
	TagList
	TagCompound
	TagIntArray
	TagLongArray
)

// Compound is a decoded NBT compound tag: name to payload. Payload types
// are int8, int16, int32, int64, float32, float64, string, []int8,
// []int32, []int64, []any (List) or Compound.
type Compound map[string]any

// Decode reads one named root tag (almost always a Compound) from r.
func Decode(r io.Reader) (name string, value any, err error) {
	d := &decoder{r: r}
	tt, err := d.readTagType()
	if err != nil {
		return "", nil, err
	}
	if tt == TagEnd {
		return "", nil, nil
	}
	name, err = d.readString()
	if err != nil {
		return "", nil, fmt.Errorf("read root tag name: %w", err)
	}
	value, err = d.readPayload(tt)
	if err != nil {
		return "", nil, fmt.Errorf("read root tag payload: %w", err)
	}
	return name, value, nil
}

type decoder struct {
	r io.Reader
}

func (d *decoder) readTagType() (TagType, error) {
	var b [1]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, err
	}
	return TagType(b[0]), nil
}

func (d *decoder) readString() (string, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(d.r, lenBuf[:]); err != nil {
		return "", err
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	if n == 0 {
		return "", nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

func (d *decoder) readPayload(tt TagType) (any, error) {
	switch tt {
	case TagByte:
		var b [1]byte
		if _, err := io.ReadFull(d.r, b[:]); err != nil {
			return nil, err
		}
		return int8(b[0]), nil
	case TagShort:
		var v int16
		if err := binary.Read(d.r, binary.BigEndian, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TagInt:
		var v int32
		if err := binary.Read(d.r, binary.BigEndian, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TagLong:
		var v int64
		if err := binary.Read(d.r, binary.BigEndian, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TagFloat:
		var v float32
		if err := binary.Read(d.r, binary.BigEndian, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TagDouble:
		var v float64
		if err := binary.Read(d.r, binary.BigEndian, &v); err != nil {
			return nil, err
		}
		return v, nil
	case TagByteArray:
		n, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		buf := make([]byte, n)
		if _, err := io.ReadFull(d.r, buf); err != nil {
			return nil, err
		}
		out := make([]int8, n)
		for i, b := range buf {
			out[i] = int8(b)
		}
		return out, nil
	case TagString:
		return d.readString()
	case TagList:
		elemType, err := d.readTagType()
		if err != nil {
			return nil, err
		}
		n, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		list := make([]any, 0, n)
		for i := int32(0); i < n; i++ {
			v, err := d.readPayload(elemType)
			if err != nil {
				return nil, fmt.Errorf("list element %d: %w", i, err)
			}
			list = append(list, v)
		}
		return list, nil
	case TagCompound:
		c := Compound{}
		for {
			tt, err := d.readTagType()
			if err != nil {
				return nil, err
			}
			if tt == TagEnd {
				break
			}
			name, err := d.readString()
			if err != nil {
				return nil, fmt.Errorf("read compound entry name: %w", err)
			}
			val, err := d.readPayload(tt)
			if err != nil {
				return nil, fmt.Errorf("read compound entry %q: %w", name, err)
			}
			c[name] = val
		}
		return c, nil
	case TagIntArray:
		n, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		out := make([]int32, n)
		for i := range out {
			v, err := d.readInt32()
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	case TagLongArray:
		n, err := d.readInt32()
		if err != nil {
			return nil, err
		}
		out := make([]int64, n)
		for i := range out {
			var v int64
			if err := binary.Read(d.r, binary.BigEndian, &v); err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unknown tag type %d", tt)
	}
}

func (d *decoder) readInt32() (int32, error) {
	var v int32
	if err := binary.Read(d.r, binary.BigEndian, &v); err != nil {
		return 0, err
	}
	return v, nil
}
