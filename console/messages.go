package console

// Console messages. They are gettext message ids; translations live in the
// configured locales directory.
const (
	selectGeneratorMessage = "Select a maze generation algorithm:"
	selectSolverMessage    = "Select a maze solving algorithm:"
	selectSizeMessage      = "Enter the maze size as \"height width\" or a single number for a square maze (each at least %d):"
	exitHintMessage        = "Enter 0 to exit."
	invalidInputMessage    = "Invalid input, try again."
	generationFailed       = "Could not generate the maze: %s"
	solvingFailed          = "Could not solve the maze: %s"
	farewellMessage        = "Goodbye!"
)
