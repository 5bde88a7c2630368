// Package firestore implements the ledger store on Cloud Firestore. Documents
// keep the camelCase field names and ISO-8601 timestamps of existing data.
package firestore

import (
	"time"

	"kanakku/internal/domain/entity"
	"kanakku/internal/util"

	fs "cloud.google.com/go/firestore"
)

// Document field names.
const (
	fieldUserID           = "userId"
	fieldShopID           = "shopId"
	fieldName             = "name"
	fieldOwnerName        = "ownerName"
	fieldContactNumber    = "contactNumber"
	fieldAddress          = "address"
	fieldUPIID            = "upiId"
	fieldIsActive         = "isActive"
	fieldCreatedAt        = "createdAt"
	fieldUpdatedAt        = "updatedAt"
	fieldPrice            = "price"
	fieldQuantity         = "quantity"
	fieldImagePath        = "imagePath"
	fieldPurchasedAt      = "purchasedAt"
	fieldAmount           = "amount"
	fieldType             = "type"
	fieldDate             = "date"
	fieldNote             = "note"
	fieldRelatedProductID = "relatedProductId"
	fieldEmail            = "email"
	fieldPhone            = "phone"
)

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}

	return t.UTC().Format(time.RFC3339Nano)
}

// --- shops ---

func shopData(shop *entity.Shop) map[string]any {
	return map[string]any{
		fieldUserID:        shop.UserID,
		fieldName:          shop.Name,
		fieldOwnerName:     shop.OwnerName,
		fieldContactNumber: shop.ContactNumber,
		fieldAddress:       shop.Address,
		fieldUPIID:         shop.UPIID,
		fieldIsActive:      shop.IsActive,
		fieldCreatedAt:     formatTime(shop.CreatedAt),
	}
}

func shopFromData(id string, data map[string]any) *entity.Shop {
	return &entity.Shop{
		ID:            id,
		UserID:        stringField(data, fieldUserID),
		Name:          stringField(data, fieldName),
		OwnerName:     stringField(data, fieldOwnerName),
		ContactNumber: stringField(data, fieldContactNumber),
		Address:       stringField(data, fieldAddress),
		UPIID:         stringField(data, fieldUPIID),
		IsActive:      boolField(data, fieldIsActive),
		CreatedAt:     timeField(data, fieldCreatedAt),
	}
}

func shopUpdates(patch *entity.ShopPatch) []fs.Update {
	var updates []fs.Update
	updates = appendString(updates, fieldName, patch.Name)
	updates = appendString(updates, fieldOwnerName, patch.OwnerName)
	updates = appendString(updates, fieldContactNumber, patch.ContactNumber)
	updates = appendString(updates, fieldAddress, patch.Address)
	updates = appendString(updates, fieldUPIID, patch.UPIID)
	if patch.IsActive != nil {
		updates = append(updates, fs.Update{Path: fieldIsActive, Value: *patch.IsActive})
	}

	return updates
}

// --- products ---

func productData(product *entity.Product) map[string]any {
	return map[string]any{
		fieldShopID:      product.ShopID,
		fieldUserID:      product.UserID,
		fieldName:        product.Name,
		fieldPrice:       product.Price,
		fieldQuantity:    product.Quantity,
		fieldImagePath:   product.ImagePath,
		fieldPurchasedAt: formatTime(product.PurchasedAt),
		fieldIsActive:    product.IsActive,
		fieldCreatedAt:   formatTime(product.CreatedAt),
	}
}

func productFromData(id string, data map[string]any) *entity.Product {
	return &entity.Product{
		ID:          id,
		ShopID:      stringField(data, fieldShopID),
		UserID:      stringField(data, fieldUserID),
		Name:        stringField(data, fieldName),
		Price:       numberField(data, fieldPrice),
		Quantity:    util.WholeNumber(numberField(data, fieldQuantity)),
		ImagePath:   stringField(data, fieldImagePath),
		PurchasedAt: timeField(data, fieldPurchasedAt),
		IsActive:    boolField(data, fieldIsActive),
		CreatedAt:   timeField(data, fieldCreatedAt),
	}
}

func productUpdates(patch *entity.ProductPatch) []fs.Update {
	var updates []fs.Update
	updates = appendString(updates, fieldName, patch.Name)
	if patch.Price != nil {
		updates = append(updates, fs.Update{Path: fieldPrice, Value: *patch.Price})
	}
	if patch.Quantity != nil {
		updates = append(updates, fs.Update{Path: fieldQuantity, Value: *patch.Quantity})
	}
	updates = appendString(updates, fieldImagePath, patch.ImagePath)
	if patch.PurchasedAt != nil {
		updates = append(updates, fs.Update{Path: fieldPurchasedAt, Value: formatTime(*patch.PurchasedAt)})
	}
	if patch.IsActive != nil {
		updates = append(updates, fs.Update{Path: fieldIsActive, Value: *patch.IsActive})
	}

	return updates
}

// --- transactions ---

func transactionData(txn *entity.Transaction) map[string]any {
	data := map[string]any{
		fieldShopID:    txn.ShopID,
		fieldUserID:    txn.UserID,
		fieldAmount:    txn.Amount,
		fieldType:      string(txn.Type),
		fieldDate:      formatTime(txn.Date),
		fieldNote:      txn.Note,
		fieldIsActive:  txn.IsActive,
		fieldCreatedAt: formatTime(txn.CreatedAt),
	}
	if txn.RelatedProductID != "" {
		data[fieldRelatedProductID] = txn.RelatedProductID
	}

	return data
}

func transactionFromData(id string, data map[string]any) *entity.Transaction {
	return &entity.Transaction{
		ID:               id,
		ShopID:           stringField(data, fieldShopID),
		UserID:           stringField(data, fieldUserID),
		Amount:           numberField(data, fieldAmount),
		Type:             typeField(data),
		Date:             timeField(data, fieldDate),
		Note:             stringField(data, fieldNote),
		RelatedProductID: stringField(data, fieldRelatedProductID),
		IsActive:         boolField(data, fieldIsActive),
		CreatedAt:        timeField(data, fieldCreatedAt),
	}
}

func amountFromData(data map[string]any) entity.TransactionAmount {
	return entity.TransactionAmount{
		Amount: numberField(data, fieldAmount),
		Type:   typeField(data),
	}
}

// typeField normalizes legacy numeric codes; unknown values are kept verbatim.
func typeField(data map[string]any) entity.TransactionType {
	t, _ := entity.ParseTransactionType(data[fieldType])

	return t
}

// --- profiles ---

func profileFromData(uid string, data map[string]any) *entity.Profile {
	profile := &entity.Profile{
		UID:     uid,
		Email:   stringField(data, fieldEmail),
		Name:    stringField(data, fieldName),
		Address: stringField(data, fieldAddress),
		Phone:   stringField(data, fieldPhone),
	}
	if t := timeField(data, fieldCreatedAt); !t.IsZero() {
		profile.CreatedAt = &t
	}
	if t := timeField(data, fieldUpdatedAt); !t.IsZero() {
		profile.UpdatedAt = &t
	}

	return profile
}

func profileData(patch *entity.ProfilePatch) map[string]any {
	data := map[string]any{
		fieldEmail:     patch.Email,
		fieldUpdatedAt: formatTime(patch.UpdatedAt),
	}
	if patch.Name != nil {
		data[fieldName] = *patch.Name
	}
	if patch.Address != nil {
		data[fieldAddress] = *patch.Address
	}
	if patch.Phone != nil {
		data[fieldPhone] = *patch.Phone
	}

	return data
}

// --- field readers ---

func appendString(updates []fs.Update, path string, value *string) []fs.Update {
	if value == nil {
		return updates
	}

	return append(updates, fs.Update{Path: path, Value: *value})
}

func stringField(data map[string]any, key string) string {
	s, _ := data[key].(string)

	return s
}

func boolField(data map[string]any, key string) bool {
	b, _ := data[key].(bool)

	return b
}

// numberField reads integer, double and numeric string fields. NaN, infinities
// and anything else read as zero.
func numberField(data map[string]any, key string) float64 {
	switch v := data[key].(type) {
	case int64:
		return float64(v)
	case float64:
		return util.Finite(v)
	case string:
		f, err := util.ParseNumber(v)
		if err != nil {
			return 0
		}

		return f
	default:
		return 0
	}
}

// timeField reads ISO-8601 strings and native timestamps.
func timeField(data map[string]any, key string) time.Time {
	switch v := data[key].(type) {
	case time.Time:
		return v.UTC()
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC()
			}
		}
	}

	return time.Time{}
}
