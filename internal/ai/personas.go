package ai

import "math/rand"

// Persona phrases prefixed onto retry prompts so repeated attempts do not ask
// the model the exact same question.
var personas = []string{
	"As an experienced franchise consultant,",
	"Taking the perspective of a seasoned business strategist,",
	"Speaking as a veteran franchise operator,",
	"From the viewpoint of a small-business financial advisor,",
	"As a pragmatic management coach,",
}

// PersonaPrefix returns a randomly selected persona phrase.
func PersonaPrefix() string {
	return personas[rand.Intn(len(personas))]
}
