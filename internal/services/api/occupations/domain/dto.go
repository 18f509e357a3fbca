package domain

// CodeInput identifies one occupation by its classification code
type CodeInput struct {
	Code string `json:"code" validate:"required,soc_code" example:"53-7051.00"`
}

// GroupsInput filters the browsable hierarchy
type GroupsInput struct {
	// Q optionally narrows nested occupations by title substring
	Q string `json:"q,omitempty" query:"q" validate:"omitempty,max=200" example:"nurse"`
}
