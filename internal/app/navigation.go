package app

import "slices"

type NavDirection int

const (
	Up NavDirection = iota
	Down
)

type SwitchDirection int

const (
	Left SwitchDirection = iota
	Right
)

// NavTasks moves the task cursor over the sorted set of task ids, not list
// positions. It clamps at both ends and first pulls a cursor that no longer
// matches a live id back onto the set.
func (a *App) NavTasks(dir NavDirection) {
	ids := a.currentProject().TaskIDs()
	if len(ids) == 0 {
		a.currentTaskID = NoTask
		return
	}
	slices.Sort(ids)
	lowest, highest := ids[0], ids[len(ids)-1]

	switch dir {
	case Up:
		if a.currentTaskID <= lowest {
			a.currentTaskID = lowest
			return
		}
		a.currentTaskID = previousID(ids, a.currentTaskID)
	case Down:
		if a.currentTaskID >= highest {
			a.currentTaskID = highest
			return
		}
		a.currentTaskID = nextID(ids, a.currentTaskID)
	}
}

// SwitchProject moves to the neighbouring project id, wrapping around at
// both ends. The task cursor resets to the lowest task id of the target.
func (a *App) SwitchProject(dir SwitchDirection) {
	ids := a.projectIDs()
	lowest, highest := ids[0], ids[len(ids)-1]

	var target uint32
	switch dir {
	case Right:
		if a.currentProjectID >= highest {
			target = lowest
		} else {
			target = nextID(ids, a.currentProjectID)
		}
	case Left:
		if a.currentProjectID <= lowest {
			target = highest
		} else {
			target = previousID(ids, a.currentProjectID)
		}
	}
	a.activate(target)
}

func (a *App) projectIDs() []uint32 {
	ids := make([]uint32, 0, len(a.projects))
	for _, project := range a.projects {
		ids = append(ids, project.ID)
	}
	slices.Sort(ids)
	return ids
}

// previousID returns the largest id below cur. sorted must hold one.
func previousID(sorted []uint32, cur uint32) uint32 {
	i, _ := slices.BinarySearch(sorted, cur)
	return sorted[i-1]
}

// nextID returns the smallest id above cur. sorted must hold one.
func nextID(sorted []uint32, cur uint32) uint32 {
	i, found := slices.BinarySearch(sorted, cur)
	if found {
		i++
	}
	return sorted[i]
}
