package main

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	m.undoStack = append(m.undoStack, Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	})
	m.redoStack = m.redoStack[:0]
}

// canReplay reports whether history may touch node positions right now.
// Moves only make sense on the edit canvas and never during a drag.
func (m *model) canReplay() bool {
	if !m.store.EditMode() {
		return false
	}
	_, dragging := m.drag.Dragging()
	return !dragging
}

func (m *model) undo() bool {
	if len(m.undoStack) == 0 || !m.canReplay() {
		return false
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	switch action.Type {
	case ActionMoveNode:
		data := action.Inverse.(OriginalNodeState)
		m.store.SetNodePosition(data.ID, data.Left, data.Top)
	}

	m.redoStack = append(m.redoStack, action)
	return true
}

func (m *model) redo() bool {
	if len(m.redoStack) == 0 || !m.canReplay() {
		return false
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	switch action.Type {
	case ActionMoveNode:
		data := action.Data.(MoveNodeData)
		m.store.SetNodePosition(data.ID, data.ToLeft, data.ToTop)
	}

	m.undoStack = append(m.undoStack, action)
	return true
}
