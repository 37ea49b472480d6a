package models_test

import (
	"github.com/cashplan/backend/internal/models"
	"github.com/google/uuid"
)

func (suite *TestSuiteStandard) TestConnectInvalidPath() {
	err := models.Connect("/not/a/directory/db.sqlite")
	suite.Assert().NotNil(err)
}

func (suite *TestSuiteStandard) TestNotFoundRewritten() {
	var item models.RecurringItem
	err := models.DB.First(&item, "id = ?", uuid.New()).Error

	suite.Require().NotNil(err)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)
	suite.Assert().Contains(err.Error(), "recurring item")
}

func (suite *TestSuiteStandard) TestClosedDBHandled() {
	suite.CloseDB()

	var items []models.RecurringItem
	err := models.DB.Find(&items).Error

	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
