/*
Package schema declares table schemas: a table name plus the access patterns
that produce its partition and sort keys.

Schemas are constructed explicitly at startup and passed by reference into
item stores; there is no hidden process-wide registration:

	story := schema.MustNew("StoryTable",
	    "USER#{owner}#STORY#{story_id}",
	    "STORY#{story_id}")

	key, _ := story.ResolveKey(map[string]any{"owner": "johndoe", "story_id": "1234"})
	// key == map[string]string{"PK": "USER#johndoe#STORY#1234", "SK": "STORY#1234"}

Schemas can also be declared in a YAML file and loaded with LoadFile:

	tables:
	  - name: StoryTable
	    partitionKeyPattern: "USER#{owner}#STORY#{story_id}"
	    sortKeyPattern: "STORY#{story_id}"

TableSpec produces the CreateTable input for provisioning the declared
table.
*/
package schema
