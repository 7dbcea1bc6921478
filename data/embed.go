package data

import (
	_ "embed"
)

//go:embed seed/users.json
var SeedUsers []byte

//go:embed seed/categories.json
var SeedCategories []byte

//go:embed seed/quiz.json
var SeedQuiz []byte
