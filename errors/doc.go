/*
Package errors provides semantic error types for the dynawrap library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrMissingAttribute  = errors.New("missing attribute for key pattern")
	    ErrMalformedTemplate = errors.New("malformed key pattern template")
	    ErrNotFound          = errors.New("item not found")
	    ErrAlreadyExists     = errors.New("item already exists")
	    ErrStoreWrite        = errors.New("store write failed")
	    ErrStoreRead         = errors.New("store read failed")
	    ErrInvalidSchema     = errors.New("invalid table schema")
	)

Usage:

	// Check error type
	item, err := store.Read(ctx, map[string]any{"story_id": "1234"})
	if err != nil {
	    if errors.IsNotFound(err) {
	        // Handle read miss
	        return nil, fmt.Errorf("story %s does not exist", "1234")
	    }
	    return nil, err
	}

	// Create typed errors
	err := errors.NewMissingAttributeError("STORY#{story_id}", "story_id")

Store failures always wrap the underlying AWS client error, so errors.As
still reaches SDK types such as *types.ConditionalCheckFailedException.
*/
package errors
