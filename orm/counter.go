package orm

var _ Model = (*Counter)(nil)

// Copy produces a new copy to fulfill the Model interface
func (c *Counter) Copy() CloneableData {
	return &Counter{
		Count: c.Count,
	}
}

// Validate is always succesful
func (c *Counter) Validate() error {
	return nil
}
