package domain

// InputVisibility holds the flags that can hide the text entry surface
// independently of the selected bottom view
type InputVisibility struct {
	HasLeftGroup bool
	IsPreview    bool
}

// ShouldHideInput reports whether the input surface must be hidden
func (v InputVisibility) ShouldHideInput() bool {
	return v.IsPreview || v.HasLeftGroup
}
