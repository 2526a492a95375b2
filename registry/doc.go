/*
Package registry maps Go types and table names to their declared
TableSchemas.

A SchemaRegistry is an explicit instance constructed at startup; schemas
are registered once and looked up by type, by table name, or by matching
concrete key values (used when parsing stream records):

	reg := registry.New()
	_ = registry.Register[Story](reg, storySchema)

	s, ok := registry.SchemaFor[Story](reg)
	s, ok = reg.Match("USER#johndoe#STORY#1234", "STORY#1234")
*/
package registry
