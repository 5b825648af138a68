// Package cascade deletes a root row together with every row that depends on
// it, walking a declared foreign key graph from the most dependent table up.
package cascade

import (
	"context"
	"fmt"
	"sort"

	"ouderschapsplan-api/internal/model"

	"gorm.io/gorm"
)

// Node is one dependent table. ForeignKey references the primary key of Parent,
// or of the root when Parent is empty.
type Node struct {
	Table      string
	Model      interface{}
	Parent     string
	ForeignKey string
}

type Graph struct {
	rootTable string
	rootModel interface{}
	nodes     []Node
	order     []Node
}

// Step records the rows removed from one table.
type Step struct {
	Table string
	Rows  int64
}

type Report struct {
	Steps []Step
}

// Rows returns the rows removed from table, or zero.
func (r Report) Rows(table string) int64 {
	for _, s := range r.Steps {
		if s.Table == table {
			return s.Rows
		}
	}
	return 0
}

// NewGraph validates the nodes and fixes the delete order: deepest tables
// first, ties in declaration order, the root last.
func NewGraph(rootTable string, rootModel interface{}, nodes ...Node) (*Graph, error) {
	byTable := make(map[string]Node, len(nodes))
	for _, n := range nodes {
		if n.Table == "" || n.ForeignKey == "" || n.Model == nil {
			return nil, fmt.Errorf("cascade: incomplete node %q", n.Table)
		}
		if _, dup := byTable[n.Table]; dup {
			return nil, fmt.Errorf("cascade: duplicate node %q", n.Table)
		}
		byTable[n.Table] = n
	}

	depth := make(map[string]int, len(nodes))
	var depthOf func(table string, seen map[string]bool) (int, error)
	depthOf = func(table string, seen map[string]bool) (int, error) {
		if d, ok := depth[table]; ok {
			return d, nil
		}
		if seen[table] {
			return 0, fmt.Errorf("cascade: cycle at %q", table)
		}
		seen[table] = true
		n := byTable[table]
		if n.Parent == "" || n.Parent == rootTable {
			depth[table] = 1
			return 1, nil
		}
		if _, ok := byTable[n.Parent]; !ok {
			return 0, fmt.Errorf("cascade: %q references unknown parent %q", table, n.Parent)
		}
		d, err := depthOf(n.Parent, seen)
		if err != nil {
			return 0, err
		}
		depth[table] = d + 1
		return d + 1, nil
	}

	for _, n := range nodes {
		if _, err := depthOf(n.Table, map[string]bool{}); err != nil {
			return nil, err
		}
	}

	order := make([]Node, len(nodes))
	copy(order, nodes)
	sort.SliceStable(order, func(i, j int) bool {
		return depth[order[i].Table] > depth[order[j].Table]
	})

	return &Graph{
		rootTable: rootTable,
		rootModel: rootModel,
		nodes:     nodes,
		order:     order,
	}, nil
}

// Order lists the tables in delete order, root included.
func (g *Graph) Order() []string {
	tables := make([]string, 0, len(g.order)+1)
	for _, n := range g.order {
		tables = append(tables, n.Table)
	}
	return append(tables, g.rootTable)
}

// condition builds the WHERE clause selecting the rows of table that belong
// to the root row.
func (g *Graph) condition(table string) string {
	var node Node
	for _, n := range g.nodes {
		if n.Table == table {
			node = n
			break
		}
	}
	if node.Parent == "" || node.Parent == g.rootTable {
		return node.ForeignKey + " = ?"
	}
	return fmt.Sprintf("%s IN (SELECT id FROM %s WHERE %s)", node.ForeignKey, node.Parent, g.condition(node.Parent))
}

// Delete removes the root row with the given id and all its dependents on tx.
// The caller owns the transaction; an error means tx must be rolled back.
func (g *Graph) Delete(ctx context.Context, tx *gorm.DB, rootID uint) (Report, error) {
	var report Report
	for _, n := range g.order {
		res := tx.WithContext(ctx).Where(g.condition(n.Table), rootID).Delete(n.Model)
		if res.Error != nil {
			return report, fmt.Errorf("deleting from %s: %w", n.Table, res.Error)
		}
		report.Steps = append(report.Steps, Step{Table: n.Table, Rows: res.RowsAffected})
	}

	res := tx.WithContext(ctx).Where("id = ?", rootID).Delete(g.rootModel)
	if res.Error != nil {
		return report, fmt.Errorf("deleting from %s: %w", g.rootTable, res.Error)
	}
	report.Steps = append(report.Steps, Step{Table: g.rootTable, Rows: res.RowsAffected})
	return report, nil
}

// DossierGraph is the dependency graph of a dossier.
func DossierGraph() *Graph {
	g, err := NewGraph("dossiers", &model.Dossier{},
		Node{Table: "alimentaties", Model: &model.Alimentatie{}, ForeignKey: "dossier_id"},
		Node{Table: "bijdragen_kosten_kinderen", Model: &model.BijdrageKostenKinderen{}, Parent: "alimentaties", ForeignKey: "alimentatie_id"},
		Node{Table: "financiele_afspraken_kinderen", Model: &model.FinancieleAfsprakenKinderen{}, Parent: "alimentaties", ForeignKey: "alimentatie_id"},
		Node{Table: "ouderschapsplan_info", Model: &model.OuderschapsplanInfo{}, ForeignKey: "dossier_id"},
		Node{Table: "omgang", Model: &model.Omgang{}, ForeignKey: "dossier_id"},
		Node{Table: "zorg", Model: &model.Zorg{}, ForeignKey: "dossier_id"},
		Node{Table: "dossiers_kinderen", Model: &model.DossierKind{}, ForeignKey: "dossier_id"},
		Node{Table: "dossiers_partijen", Model: &model.Partij{}, ForeignKey: "dossier_id"},
	)
	if err != nil {
		panic(err)
	}
	return g
}
