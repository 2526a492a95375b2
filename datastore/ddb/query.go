/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynawrap/errors"
	"github.com/suparena/dynawrap/schema"
	"github.com/suparena/dynawrap/storagemodels"
)

// QueryPrefix returns every row whose partition key equals the fully
// resolved value and whose sort key begins with the longest prefix the
// supplied attributes can resolve. With no resolvable sort prefix the whole
// partition is returned. Pages are followed until exhaustion.
func (s *ItemStore) QueryPrefix(ctx context.Context, keyAttrs map[string]any) ([]*storagemodels.Item, error) {
	pk, skPrefix, err := s.schema.ResolveKeyPrefix(keyAttrs)
	if err != nil {
		return nil, err
	}

	keyCond := fmt.Sprintf("%s = :pk", schema.KeyAttrPartition)
	exprValues := map[string]types.AttributeValue{
		":pk": &types.AttributeValueMemberS{Value: pk},
	}
	if skPrefix != "" && s.schema.HasSortKey() {
		keyCond += fmt.Sprintf(" AND begins_with(%s, :skPrefix)", schema.KeyAttrSort)
		exprValues[":skPrefix"] = &types.AttributeValueMemberS{Value: skPrefix}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(s.schema.Name()),
		KeyConditionExpression:    aws.String(keyCond),
		ExpressionAttributeValues: exprValues,
	}

	var items []*storagemodels.Item
	var lastEvaluatedKey map[string]types.AttributeValue

	for {
		if lastEvaluatedKey != nil {
			input.ExclusiveStartKey = lastEvaluatedKey
		}

		out, err := s.client.Query(ctx, input)
		if err != nil {
			s.log.Error().Err(err).
				Str("table", s.schema.Name()).
				Str("pk", pk).
				Msg("query failed")
			return nil, errors.NewStoreReadError(s.schema.Name(), err)
		}

		for _, raw := range out.Items {
			item, err := s.itemFromRaw(raw)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}

		if out.LastEvaluatedKey == nil {
			break
		}
		lastEvaluatedKey = out.LastEvaluatedKey
	}

	return items, nil
}
