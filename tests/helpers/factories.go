package helpers

import "github.com/shiftcore/assign/internal/entity"

// CreateValidWorker creates a worker capable of post at the given skill
// level.
func CreateValidWorker(id entity.WorkerID, code string, post entity.PostID, level entity.SkillLevelID) entity.Worker {
	return NewWorkerBuilder(id).WithCode(code).WithCapability(post, level).Build()
}

// CreateValidPost creates a post with the given id and name.
func CreateValidPost(id entity.PostID, name string) entity.Post {
	return NewPostBuilder(id).WithName(name).Build()
}

// BulkCreateValidWorkers creates count workers, all specialists at post.
// Codes are distinct for up to 26 workers; beyond that they repeat.
func BulkCreateValidWorkers(count int, post entity.PostID) []entity.Worker {
	workers := make([]entity.Worker, count)
	for i := 0; i < count; i++ {
		workers[i] = NewWorkerBuilder(i + 1).
			WithCode(workerCode(i + 1)).
			WithSpecialty(post).
			Build()
	}
	return workers
}

func workerCode(n int) string {
	const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	return "W" + string(letters[n%len(letters)])
}

// CreateSingleWorkerSinglePostInput builds the smallest feasible planning
// run: one specialist worker, one post, one demanded morning shift.
func CreateSingleWorkerSinglePostInput() entity.Input {
	worker := NewWorkerBuilder(1).WithCode("W1").WithSpecialty(1).Build()
	post := NewPostBuilder(1).WithName("TRIAGE").Build()

	return NewInputBuilder().
		WithWorker(worker).
		WithPost(post).
		WithDemand(1, entity.ShiftIDMorning, 1).
		WithAvailability(1, entity.ShiftIDMorning).
		WithSpecialistList(1, 1).
		Build()
}
