/*
Package keypattern implements the key template mechanism at the heart of
dynawrap: string templates with named placeholders that resolve into
concrete DynamoDB partition and sort key strings.

A pattern pairs a key role (partition or sort) with a template:

	pk, _ := keypattern.New("story_pk", keypattern.RolePartition, "USER#{owner}#STORY#{story_id}")
	key, _ := pk.Resolve(map[string]any{"owner": "johndoe", "story_id": "1234"})
	// key == "USER#johndoe#STORY#1234"

Resolution fails with errors.ErrMissingAttribute when a referenced
placeholder has no entry in the supplied map; construction fails with
errors.ErrMalformedTemplate on unbalanced or empty placeholder syntax.

ResolvePrefix produces the longest resolvable prefix for begins_with
queries, and Match tests whether a concrete key fits a pattern's literal
skeleton, which is how stream records are matched back to their schemas.
*/
package keypattern
