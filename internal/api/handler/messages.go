package handler

// User-facing messages. These are part of the wire contract: clients surface
// them directly, so wording must not drift.
const (
	msgServerError = "伺服器錯誤"

	msgAllFieldsRequired       = "所有欄位皆為必填"
	msgMemberIDRequired        = "會員編號為必填"
	msgEmailPasswordRequired   = "電子郵件和密碼為必填"
	msgPasswordFieldsRequired  = "會員編號、舊密碼和新密碼為必填"
	msgCartFieldsRequired      = "會員編號、商品編號和數量為必填"
	msgCartKeyRequired         = "會員編號和商品編號為必填"
	msgAccountPasswordRequired = "帳號和密碼為必填"
	msgAdminUserIDRequired     = "管理員編號為必填"
	msgProductIDRequired       = "商品編號為必填"
	msgProductFieldsRequired   = "商品名稱、價格、庫存數量及類別編號為必填"
	msgCategoryNameRequired    = "類別名稱為必填"
	msgCategoryFieldsRequired  = "類別編號和名稱為必填"
	msgCategoryIDRequired      = "類別編號為必填"

	msgNoFileSelected = "未選擇檔案"
	msgImageOnly      = "只能上傳圖片檔案"
	msgFileTooLarge   = "檔案大小不能超過 5MB"
	msgUploadSuccess  = "圖片上傳成功"
)
