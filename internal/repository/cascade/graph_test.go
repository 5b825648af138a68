package cascade

import (
	"context"
	"errors"
	"testing"

	"ouderschapsplan-api/internal/model"
	"ouderschapsplan-api/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var dependentTables = []string{
	"bijdragen_kosten_kinderen",
	"financiele_afspraken_kinderen",
	"alimentaties",
	"ouderschapsplan_info",
	"omgang",
	"zorg",
	"dossiers_kinderen",
	"dossiers_partijen",
}

func TestDossierGraphOrder(t *testing.T) {
	assert.Equal(t, append(append([]string{}, dependentTables...), "dossiers"), DossierGraph().Order())
}

func TestNewGraphRejectsBrokenGraphs(t *testing.T) {
	_, err := NewGraph("root", &model.Dossier{},
		Node{Table: "a", Model: &model.Zorg{}, Parent: "b", ForeignKey: "b_id"},
		Node{Table: "b", Model: &model.Zorg{}, Parent: "a", ForeignKey: "a_id"},
	)
	assert.ErrorContains(t, err, "cycle")

	_, err = NewGraph("root", &model.Dossier{},
		Node{Table: "a", Model: &model.Zorg{}, Parent: "missing", ForeignKey: "m_id"},
	)
	assert.ErrorContains(t, err, "unknown parent")

	_, err = NewGraph("root", &model.Dossier{}, Node{Table: "a", ForeignKey: "x"})
	assert.ErrorContains(t, err, "incomplete")
}

// seedDossier creates a dossier with one row in every dependent table.
func seedDossier(t *testing.T, db *gorm.DB, nummer string) uint {
	t.Helper()
	dossier := &model.Dossier{DossierNummer: nummer, GebruikerId: 1}
	require.NoError(t, db.Create(dossier).Error)

	ouder := &model.Persoon{Achternaam: "Jansen"}
	kind := &model.Persoon{Achternaam: "Jansen", Voornamen: "Sam"}
	require.NoError(t, db.Create(ouder).Error)
	require.NoError(t, db.Create(kind).Error)

	require.NoError(t, db.Create(&model.Partij{DossierId: dossier.Id, PersoonId: ouder.Id, RolId: 1}).Error)
	require.NoError(t, db.Create(&model.DossierKind{DossierId: dossier.Id, KindId: kind.Id}).Error)
	require.NoError(t, db.Create(&model.Omgang{DossierId: dossier.Id, DagId: 1, DagdeelId: 1, WeekRegelingId: 1, VerzorgerId: ouder.Id}).Error)
	require.NoError(t, db.Create(&model.Zorg{DossierId: dossier.Id, ZorgCategorieId: 1, ZorgSituatieId: 1, Overeenkomst: "om en om", AangemaaktDoor: 1}).Error)
	require.NoError(t, db.Create(&model.OuderschapsplanInfo{DossierId: dossier.Id, SoortRelatie: "gehuwd"}).Error)

	alimentatie := &model.Alimentatie{DossierId: dossier.Id}
	require.NoError(t, db.Create(alimentatie).Error)
	require.NoError(t, db.Create(&model.BijdrageKostenKinderen{AlimentatieId: alimentatie.Id, PersoonId: ouder.Id}).Error)
	require.NoError(t, db.Create(&model.FinancieleAfsprakenKinderen{AlimentatieId: alimentatie.Id, KindId: kind.Id}).Error)
	return dossier.Id
}

func countRows(t *testing.T, db *gorm.DB) map[string]int64 {
	t.Helper()
	counts := map[string]int64{}
	for _, table := range append(append([]string{}, dependentTables...), "dossiers") {
		var n int64
		require.NoError(t, db.Table(table).Count(&n).Error)
		counts[table] = n
	}
	return counts
}

func TestDeleteRemovesAllDescendants(t *testing.T) {
	db := testutil.NewDB(t)
	target := seedDossier(t, db, "DOS-1")
	other := seedDossier(t, db, "DOS-2")

	var report Report
	err := db.Transaction(func(tx *gorm.DB) error {
		var err error
		report, err = DossierGraph().Delete(context.Background(), tx, target)
		return err
	})
	require.NoError(t, err)

	for _, table := range dependentTables {
		assert.Equal(t, int64(1), report.Rows(table), table)
	}
	assert.Equal(t, int64(1), report.Rows("dossiers"))

	counts := countRows(t, db)
	for table, n := range counts {
		assert.Equal(t, int64(1), n, "only the other dossier remains in %s", table)
	}

	var remaining model.Dossier
	require.NoError(t, db.First(&remaining).Error)
	assert.Equal(t, other, remaining.Id)
}

func TestDeleteRollsBackOnFailure(t *testing.T) {
	for _, failAt := range []string{"alimentaties", "zorg", "dossiers_partijen", "dossiers"} {
		t.Run(failAt, func(t *testing.T) {
			db := testutil.NewDB(t)
			id := seedDossier(t, db, "DOS-1")
			before := countRows(t, db)

			require.NoError(t, db.Callback().Delete().Before("gorm:delete").Register("test:fail", func(tx *gorm.DB) {
				if tx.Statement.Table == failAt {
					_ = tx.AddError(errors.New("forced failure"))
				}
			}))

			err := db.Transaction(func(tx *gorm.DB) error {
				_, err := DossierGraph().Delete(context.Background(), tx, id)
				return err
			})
			require.Error(t, err)
			assert.ErrorContains(t, err, failAt)

			assert.Equal(t, before, countRows(t, db))
		})
	}
}

func TestDeleteMissingRoot(t *testing.T) {
	db := testutil.NewDB(t)

	report, err := DossierGraph().Delete(context.Background(), db, 404)
	require.NoError(t, err)
	assert.Zero(t, report.Rows("dossiers"))
}
