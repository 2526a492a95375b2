/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// TableSpec returns the CreateTable input for provisioning this schema's
// table. Key attributes are always strings; throughput defaults to the
// minimum and can be adjusted by the caller before issuing the call.
func (s *TableSchema) TableSpec() *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{
		{AttributeName: aws.String(KeyAttrPartition), AttributeType: types.ScalarAttributeTypeS},
	}
	keySchema := []types.KeySchemaElement{
		{AttributeName: aws.String(KeyAttrPartition), KeyType: types.KeyTypeHash},
	}
	if s.sort != nil {
		attrs = append(attrs, types.AttributeDefinition{
			AttributeName: aws.String(KeyAttrSort), AttributeType: types.ScalarAttributeTypeS,
		})
		keySchema = append(keySchema, types.KeySchemaElement{
			AttributeName: aws.String(KeyAttrSort), KeyType: types.KeyTypeRange,
		})
	}

	return &dynamodb.CreateTableInput{
		TableName:            aws.String(s.name),
		AttributeDefinitions: attrs,
		KeySchema:            keySchema,
		ProvisionedThroughput: &types.ProvisionedThroughput{
			ReadCapacityUnits:  aws.Int64(1),
			WriteCapacityUnits: aws.Int64(1),
		},
	}
}
