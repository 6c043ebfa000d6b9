// internal/types/types.go
package types

// EntityID — уникальный идентификатор сущности в реестре.
// Идентификаторы монотонно растут и никогда не переиспользуются,
// поэтому поиск по устаревшему ID просто не находит компонентов.
type EntityID uint64
