package execution

import (
	"time"

	"github.com/helioshare/helioshare/common/result"
	st "github.com/helioshare/helioshare/ledger/state"
	"github.com/helioshare/helioshare/ledger/types"
)

// _______________________________________________________________________

// CreateProjectTxExecutor implements the TxExecutor interface
type CreateProjectTxExecutor struct {
	authorizer Authorizer
}

// NewCreateProjectTxExecutor creates a new instance of CreateProjectTxExecutor
func NewCreateProjectTxExecutor(authorizer Authorizer) *CreateProjectTxExecutor {
	return &CreateProjectTxExecutor{
		authorizer: authorizer,
	}
}

func (exec *CreateProjectTxExecutor) sanityCheck(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.CreateProjectTx)

	if tx.TotalSupply == 0 {
		return result.ErrInvalidSupply
	}
	if tx.PriceWei == nil || tx.PriceWei.Sign() <= 0 {
		return result.ErrInvalidPrice
	}
	if tx.MinPurchase == 0 || tx.MinPurchase > tx.TotalSupply {
		return result.ErrInvalidMinPurchase
	}

	// Creating on behalf of another account is an admin capability.
	if !tx.Creator.IsEmpty() && tx.Creator != tx.Requestor {
		if !exec.authorizer.IsOwner(tx.Requestor) {
			return result.ErrUnauthorized
		}
	}

	creator := tx.Creator
	if creator.IsEmpty() {
		creator = tx.Requestor
	}
	if creator.IsEmpty() {
		return result.ErrInvalidCreator
	}

	return result.OK
}

func (exec *CreateProjectTxExecutor) process(view *st.StoreView, transaction types.Tx) result.Result {
	tx := transaction.(*types.CreateProjectTx)

	creator := tx.Creator
	if creator.IsEmpty() {
		creator = tx.Requestor
	}

	projectID := view.GetNextProjectID()
	view.SetNextProjectID(projectID + 1)

	project := types.NewProject(projectID, creator, tx.TotalSupply, tx.PriceWei, tx.MinPurchase, uint64(time.Now().Unix()))
	view.SetProject(project)
	view.SetProjectMetadata(&types.ProjectMetadata{ID: projectID, Name: tx.Name})

	view.Emit(types.ProjectCreatedEvent{
		ProjectID:   projectID,
		Creator:     creator,
		Name:        tx.Name,
		TotalSupply: tx.TotalSupply,
		PriceWei:    project.PriceWei,
	})

	logger.Infof("Created project %v (%v) for creator %v", projectID, tx.Name, creator)
	return result.OK
}
