package cache

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Entity names the kind of document a mutation touched.
type Entity string

const (
	EntityCourse     Entity = "course"
	EntitySection    Entity = "section"
	EntitySubSection Entity = "subsection"
	EntityReview     Entity = "review"
	EntityEnrollment Entity = "enrollment"
	EntityCategory   Entity = "category"
	EntityUser       Entity = "user"
)

// Mutation describes one committed write. CategoryIDs lists every category
// whose page could change, including the old one when a course moves.
type Mutation struct {
	Entity      Entity
	CourseID    primitive.ObjectID
	CategoryIDs []primitive.ObjectID
}

type target struct {
	key     string
	pattern bool
}

type keyRule func(m Mutation) []target

func courseDetail(m Mutation) []target {
	if m.CourseID.IsZero() {
		return nil
	}
	return []target{{key: CourseDetailKey(m.CourseID.Hex())}}
}

func categoryPages(m Mutation) []target {
	targets := make([]target, 0, len(m.CategoryIDs))
	for _, id := range m.CategoryIDs {
		if !id.IsZero() {
			targets = append(targets, target{key: CategoryCoursesKey(id.Hex())})
		}
	}
	return targets
}

func allCourses(Mutation) []target {
	return []target{{key: AllCoursesKey}}
}

// Category pages embed best sellers from every category.
func everyCategoryPage(Mutation) []target {
	return []target{{key: categoryCoursesPattern, pattern: true}}
}

func everyCourseDetail(Mutation) []target {
	return []target{{key: courseDetailPattern, pattern: true}}
}

// dependencies maps each entity to the cached payloads built from it.
var dependencies = map[Entity][]keyRule{
	EntityCourse:     {courseDetail, categoryPages, allCourses, everyCategoryPage},
	EntitySection:    {courseDetail},
	EntitySubSection: {courseDetail},
	EntityReview:     {courseDetail},
	EntityEnrollment: {courseDetail, everyCategoryPage},
	EntityCategory:   {categoryPages},
	EntityUser:       {everyCourseDetail, everyCategoryPage},
}

// Invalidator deletes the cache entries affected by mutations.
type Invalidator struct {
	cache Cache
}

// NewInvalidator creates a new Invalidator.
func NewInvalidator(c Cache) *Invalidator {
	return &Invalidator{cache: c}
}

// Invalidate removes every entry derived from the mutated entities.
// Failures are logged; entries then expire by TTL.
func (i *Invalidator) Invalidate(ctx context.Context, mutations ...Mutation) {
	keys, patterns := Targets(mutations...)
	if len(keys) > 0 {
		if err := i.cache.Delete(ctx, keys...); err != nil {
			log.Printf("cache invalidate %v: %v", keys, err)
		}
	}
	for _, pattern := range patterns {
		if err := i.cache.DeletePattern(ctx, pattern); err != nil {
			log.Printf("cache invalidate %s: %v", pattern, err)
		}
	}
}

// Targets resolves mutations into distinct keys and patterns.
func Targets(mutations ...Mutation) (keys []string, patterns []string) {
	seen := make(map[target]bool)
	for _, m := range mutations {
		for _, rule := range dependencies[m.Entity] {
			for _, t := range rule(m) {
				if seen[t] {
					continue
				}
				seen[t] = true
				if t.pattern {
					patterns = append(patterns, t.key)
				} else {
					keys = append(keys, t.key)
				}
			}
		}
	}
	return keys, patterns
}
