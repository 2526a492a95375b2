/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package stream turns DynamoDB Streams event records back into items.
//
// A Lambda consumer receives events.DynamoDBEventRecord values whose images
// are wire-format attribute values. Decode converts an image into a plain
// attribute map, and ItemFromRecord / ItemFromRecordMatching wrap that into
// a storagemodels.Item bound to the table schema whose key patterns the
// record's PK and SK satisfy.
package stream
