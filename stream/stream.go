/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package stream

import (
	stderrors "errors"
	"fmt"
	"strconv"

	"github.com/aws/aws-lambda-go/events"

	"github.com/suparena/dynawrap/registry"
	"github.com/suparena/dynawrap/schema"
	"github.com/suparena/dynawrap/storagemodels"
)

// ErrNoMatchingSchema is returned when a record's key matches none of the
// registered table schemas.
var ErrNoMatchingSchema = stderrors.New("stream: no registered schema matches record key")

// ErrNoImage is returned when a record carries no NewImage, typically a
// REMOVE event or a stream whose view type excludes new images.
var ErrNoImage = stderrors.New("stream: record has no new image")

// Decode converts a stream image into a plain attribute map. Numbers come
// back as int64 when integral and float64 otherwise; nested lists and maps
// are converted recursively.
func Decode(image map[string]events.DynamoDBAttributeValue) (map[string]any, error) {
	attrs := make(map[string]any, len(image))
	for name, av := range image {
		v, err := decodeValue(av)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}
		attrs[name] = v
	}
	return attrs, nil
}

func decodeValue(av events.DynamoDBAttributeValue) (any, error) {
	switch av.DataType() {
	case events.DataTypeString:
		return av.String(), nil
	case events.DataTypeNumber:
		return decodeNumber(av.Number())
	case events.DataTypeBoolean:
		return av.Boolean(), nil
	case events.DataTypeNull:
		return nil, nil
	case events.DataTypeBinary:
		return av.Binary(), nil
	case events.DataTypeStringSet:
		return av.StringSet(), nil
	case events.DataTypeNumberSet:
		ns := av.NumberSet()
		out := make([]any, 0, len(ns))
		for _, n := range ns {
			v, err := decodeNumber(n)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case events.DataTypeBinarySet:
		return av.BinarySet(), nil
	case events.DataTypeList:
		list := av.List()
		out := make([]any, 0, len(list))
		for _, elem := range list {
			v, err := decodeValue(elem)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case events.DataTypeMap:
		return Decode(av.Map())
	default:
		return nil, fmt.Errorf("unsupported attribute type %v", av.DataType())
	}
}

func decodeNumber(n string) (any, error) {
	if i, err := strconv.ParseInt(n, 10, 64); err == nil {
		return i, nil
	}
	f, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed number %q", n)
	}
	return f, nil
}

func recordKey(record events.DynamoDBEventRecord) (pk, sk string) {
	if av, ok := record.Change.Keys[schema.KeyAttrPartition]; ok {
		pk = av.String()
	}
	if av, ok := record.Change.Keys[schema.KeyAttrSort]; ok {
		sk = av.String()
	}
	return pk, sk
}

// ItemFromRecord decodes a stream record's NewImage into an Item for the
// given schema. The record's key must match the schema's declared patterns.
func ItemFromRecord(s *schema.TableSchema, record events.DynamoDBEventRecord) (*storagemodels.Item, error) {
	pk, sk := recordKey(record)
	if !s.MatchesKey(pk, sk) {
		return nil, ErrNoMatchingSchema
	}
	return itemFromImage(s, record)
}

// ItemFromRecordMatching decodes a stream record's NewImage into an Item,
// discriminating the owning schema by matching the record's key against
// every registered schema in registration order.
func ItemFromRecordMatching(reg *registry.SchemaRegistry, record events.DynamoDBEventRecord) (*storagemodels.Item, error) {
	pk, sk := recordKey(record)
	s, ok := reg.Match(pk, sk)
	if !ok {
		return nil, ErrNoMatchingSchema
	}
	return itemFromImage(s, record)
}

func itemFromImage(s *schema.TableSchema, record events.DynamoDBEventRecord) (*storagemodels.Item, error) {
	if len(record.Change.NewImage) == 0 {
		return nil, ErrNoImage
	}
	attrs, err := Decode(record.Change.NewImage)
	if err != nil {
		return nil, err
	}
	return storagemodels.FromAttributes(s, attrs), nil
}
