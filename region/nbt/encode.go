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

package nbt

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Encode is nbt.Decode's inverse; it exists primarily so package tests
// (here and in region/) can build chunk fixtures without a live server.
func Encode(w io.Writer, name string, value any) error {
	tt, err := tagTypeOf(value)
	if err != nil {
		return err
	}
	e := &encoder{w: w}
	if err := e.writeTagType(tt); err != nil {
		return err
	}
	if err := e.writeString(name); err != nil {
		return err
	}
	return e.writePayload(tt, value)
}

type encoder struct {
	w io.Writer
}

func (e *encoder) writeTagType(tt TagType) error {
	_, err := e.w.Write([]byte{byte(tt)})
	return err
}

func (e *encoder) writeString(s string) error {
	if err := binary.Write(e.w, binary.BigEndian, uint16(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(e.w, s)
	return err
}

func tagTypeOf(value any) (TagType, error) {
	switch value.(type) {
	case int8:
		return TagByte, nil
	case int16:
		return TagShort, nil
	case int32:
		return TagInt, nil
	case int64:
		return TagLong, nil
	case float32:
		return TagFloat, nil
	case float64:
		return TagDouble, nil
	case []int8:
		return TagByteArray, nil
	case string:
		return TagString, nil
	case []any:
		return TagList, nil
	case Compound:
		return TagCompound, nil
	case []int32:
		return TagIntArray, nil
	case []int64:
		return TagLongArray, nil
	default:
		return 0, fmt.Errorf("unsupported nbt value type %T", value)
	}
}

func (e *encoder) writePayload(tt TagType, value any) error {
	switch tt {
	case TagByte:
		_, err := e.w.Write([]byte{byte(value.(int8))})
		return err
	case TagShort:
		return binary.Write(e.w, binary.BigEndian, value.(int16))
	case TagInt:
		return binary.Write(e.w, binary.BigEndian, value.(int32))
	case TagLong:
		return binary.Write(e.w, binary.BigEndian, value.(int64))
	case TagFloat:
		return binary.Write(e.w, binary.BigEndian, value.(float32))
	case TagDouble:
		return binary.Write(e.w, binary.BigEndian, value.(float64))
	case TagByteArray:
		arr := value.([]int8)
		if err := binary.Write(e.w, binary.BigEndian, int32(len(arr))); err != nil {
			return err
		}
		for _, b := range arr {
			if _, err := e.w.Write([]byte{byte(b)}); err != nil {
				return err
			}
		}
		return nil
	case TagString:
		return e.writeString(value.(string))
	case TagList:
		list := value.([]any)
		elemType := TagEnd
		if len(list) > 0 {
			t, err := tagTypeOf(list[0])
			if err != nil {
				return err
			}
			elemType = t
		}
		if err := e.writeTagType(elemType); err != nil {
			return err
		}
		if err := binary.Write(e.w, binary.BigEndian, int32(len(list))); err != nil {
			return err
		}
		for _, v := range list {
			if err := e.writePayload(elemType, v); err != nil {
				return err
			}
		}
		return nil
	case TagCompound:
		c := value.(Compound)
		for k, v := range c {
			et, err := tagTypeOf(v)
			if err != nil {
				return err
			}
			if err := e.writeTagType(et); err != nil {
				return err
			}
			if err := e.writeString(k); err != nil {
				return err
			}
			if err := e.writePayload(et, v); err != nil {
				return err
			}
		}
		return e.writeTagType(TagEnd)
	case TagIntArray:
		arr := value.([]int32)
		if err := binary.Write(e.w, binary.BigEndian, int32(len(arr))); err != nil {
			return err
		}
		for _, v := range arr {
			if err := binary.Write(e.w, binary.BigEndian, v); err != nil {
				return err
			}
		}
		return nil
	case TagLongArray:
		arr := value.([]int64)
		if err := binary.Write(e.w, binary.BigEndian, int32(len(arr))); err != nil {
			return err
		}
		for _, v := range arr {
			if err := binary.Write(e.w, binary.BigEndian, v); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported tag type %d", tt)
	}
}
