package domain

import "strings"

// Catalog - неизменяемый упорядоченный справочник объектов.
// Загружается один раз при старте и только читается при обработке запросов,
// поэтому безопасен для конкурентного доступа без блокировок.
type Catalog struct {
	properties []Property
	byCity     map[string][]int
}

// NewCatalog строит справочник, проверяя инварианты каждого объекта.
// Порядок объектов сохраняется.
func NewCatalog(properties []Property) (*Catalog, error) {
	c := &Catalog{
		properties: make([]Property, 0, len(properties)),
		byCity:     make(map[string][]int),
	}

	for _, p := range properties {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		key := cityKey(p.City)
		c.byCity[key] = append(c.byCity[key], len(c.properties))
		c.properties = append(c.properties, p)
	}

	return c, nil
}

// All возвращает копию всех объектов в порядке загрузки
func (c *Catalog) All() []Property {
	out := make([]Property, len(c.properties))
	copy(out, c.properties)
	return out
}

// ByCity возвращает объекты с точным (без учета регистра) совпадением города
func (c *Catalog) ByCity(city string) []Property {
	idx := c.byCity[cityKey(city)]
	out := make([]Property, 0, len(idx))
	for _, i := range idx {
		out = append(out, c.properties[i])
	}
	return out
}

// Cities возвращает уникальные названия городов в порядке первого появления
func (c *Catalog) Cities() []string {
	seen := make(map[string]struct{}, len(c.byCity))
	cities := make([]string, 0, len(c.byCity))
	for _, p := range c.properties {
		key := cityKey(p.City)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		cities = append(cities, p.City)
	}
	return cities
}

// Len - количество объектов
func (c *Catalog) Len() int {
	return len(c.properties)
}

func cityKey(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
