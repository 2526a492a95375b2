/*
Package storagemodels defines the data structures shared by dynawrap's
storage layer.

The central type is Item, one table row represented as a reference to its
TableSchema plus a mutable attribute map with explicit presence checks:

	it := storagemodels.NewItem(storySchema)
	it.Set("owner", "johndoe")
	it.Set("story_id", "1234")
	it.Set("title", "My Story")

	key, _ := it.Key()
	// key == map[string]string{"PK": "USER#johndoe#STORY#1234", "SK": "STORY#1234"}

As and ItemFrom bridge between attribute maps and caller struct types using
the AWS attributevalue marshaling rules, so strongly typed models and raw
items interoperate:

	story, _ := storagemodels.As[Story](it)
	it2, _ := storagemodels.ItemFrom(storySchema, *story)
*/
package storagemodels
