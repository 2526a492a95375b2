/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/dynawrap/schema"
)

// fakeDynamoClient is an in-memory DynamoClient good enough for the store's
// call shapes: full-key gets/puts/deletes and PK-equality queries with an
// optional begins_with sort prefix.
type fakeDynamoClient struct {
	mu     sync.Mutex
	tables map[string]map[string]map[string]types.AttributeValue

	// pageSize limits query pages to exercise pagination; 0 means one page.
	pageSize int

	putErr    error
	getErr    error
	deleteErr error
	queryErr  error
}

func newFakeDynamoClient() *fakeDynamoClient {
	return &fakeDynamoClient{
		tables: make(map[string]map[string]map[string]types.AttributeValue),
	}
}

func stringAttr(item map[string]types.AttributeValue, name string) string {
	if v, ok := item[name].(*types.AttributeValueMemberS); ok {
		return v.Value
	}
	return ""
}

func compositeKey(item map[string]types.AttributeValue) string {
	return stringAttr(item, schema.KeyAttrPartition) + "\x00" + stringAttr(item, schema.KeyAttrSort)
}

func (f *fakeDynamoClient) table(name string) map[string]map[string]types.AttributeValue {
	t, ok := f.tables[name]
	if !ok {
		t = make(map[string]map[string]types.AttributeValue)
		f.tables[name] = t
	}
	return t
}

func (f *fakeDynamoClient) PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	t := f.table(*params.TableName)
	ck := compositeKey(params.Item)

	if params.ConditionExpression != nil &&
		strings.HasPrefix(*params.ConditionExpression, "attribute_not_exists") {
		if _, exists := t[ck]; exists {
			return nil, &types.ConditionalCheckFailedException{
				Message: aws.String("The conditional request failed"),
			}
		}
	}

	copied := make(map[string]types.AttributeValue, len(params.Item))
	for k, v := range params.Item {
		copied[k] = v
	}
	t[ck] = copied
	return &dynamodb.PutItemOutput{}, nil
}

func (f *fakeDynamoClient) GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	item, ok := f.table(*params.TableName)[compositeKey(params.Key)]
	if !ok {
		return &dynamodb.GetItemOutput{}, nil
	}
	return &dynamodb.GetItemOutput{Item: item}, nil
}

func (f *fakeDynamoClient) DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error) {
	if f.deleteErr != nil {
		return nil, f.deleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.table(*params.TableName), compositeKey(params.Key))
	return &dynamodb.DeleteItemOutput{}, nil
}

func (f *fakeDynamoClient) Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	if f.queryErr != nil {
		return nil, f.queryErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()

	pk := ""
	if v, ok := params.ExpressionAttributeValues[":pk"].(*types.AttributeValueMemberS); ok {
		pk = v.Value
	}
	skPrefix := ""
	if v, ok := params.ExpressionAttributeValues[":skPrefix"].(*types.AttributeValueMemberS); ok {
		skPrefix = v.Value
	}

	t := f.table(*params.TableName)
	var keys []string
	for ck, item := range t {
		if stringAttr(item, schema.KeyAttrPartition) != pk {
			continue
		}
		if skPrefix != "" && !strings.HasPrefix(stringAttr(item, schema.KeyAttrSort), skPrefix) {
			continue
		}
		keys = append(keys, ck)
	}
	sort.Strings(keys)

	start := 0
	if params.ExclusiveStartKey != nil {
		last := compositeKey(params.ExclusiveStartKey)
		for i, ck := range keys {
			if ck == last {
				start = i + 1
				break
			}
		}
	}

	end := len(keys)
	if f.pageSize > 0 && start+f.pageSize < end {
		end = start + f.pageSize
	}

	out := &dynamodb.QueryOutput{}
	for _, ck := range keys[start:end] {
		out.Items = append(out.Items, t[ck])
	}
	if end < len(keys) {
		out.LastEvaluatedKey = map[string]types.AttributeValue{
			schema.KeyAttrPartition: t[keys[end-1]][schema.KeyAttrPartition],
			schema.KeyAttrSort:      t[keys[end-1]][schema.KeyAttrSort],
		}
	}
	return out, nil
}
