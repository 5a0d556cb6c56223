// internal/event/types.go
package event

const (
	EnemyEscape  EventType = "EnemyEscape"  // Враги покинули поле, Data: []*component.Enemy
	EnemyDeath   EventType = "EnemyDeath"   // Враги убиты, Data: []*component.Enemy (может быть пустым)
	Cleared      EventType = "Cleared"      // На поле и в очереди нет врагов
	TowerPlaced  EventType = "TowerPlaced"  // Башня построена, Data: grid.Cell
	TowerRemoved EventType = "TowerRemoved" // Башня убрана, Data: grid.Cell
)
