// Package docs 由 swag init 生成的接口文档注册入口
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/api/admin/push-to-user": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "推送商品到指定商户 (管理员)",
                "parameters": [
                    {
                        "description": "商品ID与商户ID",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.AdminPushReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/admin/sync-prices": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sync"
                ],
                "summary": "手动调价 (管理员)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SyncPricesResp"
                        }
                    },
                    "409": {
                        "description": "已有调价任务在执行",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "429": {
                        "description": "冷却中",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/admin/users": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "商户列表 (管理员)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "店铺域名关键字",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "角色 admin / end_user",
                        "name": "role",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "页码",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 20,
                        "description": "每页数量",
                        "name": "pageSize",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "{\"users\": [...], \"total\": 0}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/admin/users/role": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Admin"
                ],
                "summary": "提升/降级商户 (管理员)",
                "parameters": [
                    {
                        "description": "店铺域名与新角色",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.PromoteUserReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "非法角色",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "商户不存在",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/auth/callback": {
            "get": {
                "description": "校验 HMAC 与 state，换取 access token，写入商户并签发会话 cookie",
                "tags": [
                    "Auth (授权模块)"
                ],
                "summary": "Shopify 授权回调",
                "parameters": [
                    {
                        "type": "string",
                        "description": "授权码",
                        "name": "code",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "店铺域名",
                        "name": "shop",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "签名",
                        "name": "hmac",
                        "in": "query",
                        "required": true
                    },
                    {
                        "type": "string",
                        "description": "安全校验码",
                        "name": "state",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "302": {
                        "description": "跳转到 /auth/error?reason=",
                        "schema": {
                            "type": "string"
                        }
                    }
                }
            }
        },
        "/api/auth/install": {
            "get": {
                "description": "校验店铺域名，生成一次性 state 后跳转到 Shopify 授权页；携带 code 时按回调处理",
                "tags": [
                    "Auth (授权模块)"
                ],
                "summary": "发起 Shopify 安装授权",
                "parameters": [
                    {
                        "type": "string",
                        "description": "店铺域名 xxx.myshopify.com",
                        "name": "shop",
                        "in": "query",
                        "required": true
                    }
                ],
                "responses": {
                    "302": {
                        "description": "跳转到 Shopify 授权页",
                        "schema": {
                            "type": "string"
                        }
                    },
                    "400": {
                        "description": "店铺域名缺失或非法",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/auth/logout": {
            "post": {
                "tags": [
                    "Auth (授权模块)"
                ],
                "summary": "退出登录",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/auth/session": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Auth (授权模块)"
                ],
                "summary": "当前会话",
                "responses": {
                    "200": {
                        "description": "{\"session\": {...}}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "401": {
                        "description": "未登录",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/cards/import": {
            "post": {
                "description": "按行情定价并开启自动调价，默认生成品相变体",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Card"
                ],
                "summary": "导入卡牌到目录 (管理员)",
                "parameters": [
                    {
                        "description": "卡牌ID",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ImportCardReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "卡牌不存在",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/cards/search": {
            "get": {
                "description": "setId 优先于 q；q 为纯文本时按卡名匹配",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Card"
                ],
                "summary": "搜索卡牌 (管理员)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "关键字或查询语法",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "系列ID",
                        "name": "setId",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "页码",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 50,
                        "description": "每页数量",
                        "name": "pageSize",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SearchCardsResp"
                        }
                    },
                    "504": {
                        "description": "卡牌接口超时",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/cards/sets": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Card"
                ],
                "summary": "卡牌系列列表 (管理员)",
                "responses": {
                    "200": {
                        "description": "{\"success\": true, \"sets\": [...]}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/cards/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Card"
                ],
                "summary": "单卡详情与行情 (管理员)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "卡牌ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "{\"card\": {...}}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/cron/sync-prices": {
            "get": {
                "security": [
                    {
                        "BearerAuth": []
                    }
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Sync"
                ],
                "summary": "定时调价 (cron)",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SyncPricesResp"
                        }
                    },
                    "401": {
                        "description": "Unauthorized",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "409": {
                        "description": "已有调价任务在执行",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/expansions": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Expansion"
                ],
                "summary": "扩展包与系列目录",
                "parameters": [
                    {
                        "type": "string",
                        "description": "扩展包ID，只返回该扩展包",
                        "name": "id",
                        "in": "query"
                    },
                    {
                        "type": "string",
                        "description": "系列ID，返回所属扩展包",
                        "name": "setId",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/products": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Product"
                ],
                "summary": "商品目录 (按系列分组)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "只返回该系列",
                        "name": "set",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "{\"products\": {\"set\": [...]}}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            },
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Product"
                ],
                "summary": "创建目录商品 (管理员)",
                "parameters": [
                    {
                        "description": "商品信息",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.CreateProductReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "{\"success\": true, \"product\": {...}}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "Bad Request",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/products/added": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Product"
                ],
                "summary": "已上架商品",
                "responses": {
                    "200": {
                        "description": "{\"addedProductIds\": [...]}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/api/products/search": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Product"
                ],
                "summary": "关键字搜索商品",
                "parameters": [
                    {
                        "type": "string",
                        "description": "关键字",
                        "name": "q",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 1,
                        "description": "页码",
                        "name": "page",
                        "in": "query"
                    },
                    {
                        "type": "integer",
                        "default": 25,
                        "description": "每页数量",
                        "name": "limit",
                        "in": "query"
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.SearchProductsResp"
                        }
                    }
                }
            }
        },
        "/api/products/{id}": {
            "delete": {
                "description": "级联删除变体与商户关联，不删除商户店铺中已上架的商品",
                "tags": [
                    "Product"
                ],
                "summary": "删除目录商品 (管理员)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "商品ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Product"
                ],
                "summary": "商品详情 (含品相变体)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "商品ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "{\"product\": {...}}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            },
            "put": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Product"
                ],
                "summary": "更新目录商品 (管理员)",
                "parameters": [
                    {
                        "type": "string",
                        "description": "商品ID",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "需要修改的字段",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.UpdateProductReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "{\"success\": true, \"product\": {...}}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "没有需要修改的字段",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "Not Found",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/store/add-all-from-set": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "按系列批量上架",
                "parameters": [
                    {
                        "description": "系列名",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BulkAddResp"
                        }
                    },
                    "404": {
                        "description": "系列为空",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/store/push": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "上架到我的店铺",
                "parameters": [
                    {
                        "description": "商品ID",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProductIDReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "{\"success\": true, \"shopifyProductId\": \"...\"}",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "400": {
                        "description": "已上架",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "商品不存在",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/store/remove": {
            "post": {
                "description": "远端商品已被手动删除时同样视为成功",
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "从我的店铺下架",
                "parameters": [
                    {
                        "description": "商品ID",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.ProductIDReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "404": {
                        "description": "未上架",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        },
        "/api/store/remove-all-from-set": {
            "post": {
                "consumes": [
                    "application/json"
                ],
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "Store"
                ],
                "summary": "按系列批量下架",
                "parameters": [
                    {
                        "description": "系列名",
                        "name": "request",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/dto.SetReq"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/dto.BulkRemoveResp"
                        }
                    },
                    "400": {
                        "description": "该系列没有已上架商品",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    },
                    "404": {
                        "description": "系列为空",
                        "schema": {
                            "type": "object",
                            "additionalProperties": {
                                "type": "string"
                            }
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "dto.AdminPushReq": {
            "type": "object",
            "required": [
                "productId",
                "userId"
            ],
            "properties": {
                "productId": {
                    "type": "string"
                },
                "userId": {
                    "type": "string"
                }
            }
        },
        "dto.BulkAddResp": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "results": {
                    "$ref": "#/definitions/dto.BulkAddResults"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.BulkAddResults": {
            "type": "object",
            "properties": {
                "alreadyAdded": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "failed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BulkFailure"
                    }
                },
                "successful": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.BulkFailure": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "productId": {
                    "type": "string"
                }
            }
        },
        "dto.BulkRemoveResp": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "results": {
                    "$ref": "#/definitions/dto.BulkRemoveResults"
                },
                "success": {
                    "type": "boolean"
                }
            }
        },
        "dto.BulkRemoveResults": {
            "type": "object",
            "properties": {
                "failed": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/dto.BulkFailure"
                    }
                },
                "notFound": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "successful": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "dto.CardPagination": {
            "type": "object",
            "properties": {
                "page": {
                    "type": "integer"
                },
                "pageSize": {
                    "type": "integer"
                },
                "total": {
                    "type": "integer"
                }
            }
        },
        "dto.CreateProductReq": {
            "type": "object",
            "required": [
                "description",
                "imageUrl",
                "set",
                "title"
            ],
            "properties": {
                "description": {
                    "type": "string"
                },
                "expansion": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "isSingle": {
                    "type": "boolean"
                },
                "price": {
                    "type": "string"
                },
                "set": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "dto.ImportCardReq": {
            "type": "object",
            "required": [
                "pokemonCardId"
            ],
            "properties": {
                "createVariants": {
                    "type": "boolean"
                },
                "pokemonCardId": {
                    "type": "string"
                }
            }
        },
        "dto.Pagination": {
            "type": "object",
            "properties": {
                "currentPage": {
                    "type": "integer"
                },
                "hasNextPage": {
                    "type": "boolean"
                },
                "hasPrevPage": {
                    "type": "boolean"
                },
                "itemsPerPage": {
                    "type": "integer"
                },
                "totalItems": {
                    "type": "integer"
                },
                "totalPages": {
                    "type": "integer"
                }
            }
        },
        "dto.ProductIDReq": {
            "type": "object",
            "required": [
                "productId"
            ],
            "properties": {
                "productId": {
                    "type": "string"
                }
            }
        },
        "dto.PromoteUserReq": {
            "type": "object",
            "required": [
                "newRole",
                "shopDomain"
            ],
            "properties": {
                "newRole": {
                    "type": "string"
                },
                "shopDomain": {
                    "type": "string"
                }
            }
        },
        "dto.SearchCardsResp": {
            "type": "object",
            "properties": {
                "cards": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/pokemontcg.Card"
                    }
                },
                "pagination": {
                    "$ref": "#/definitions/dto.CardPagination"
                }
            }
        },
        "dto.SearchProductsResp": {
            "type": "object",
            "properties": {
                "pagination": {
                    "$ref": "#/definitions/dto.Pagination"
                },
                "products": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.Product"
                    }
                }
            }
        },
        "dto.SetReq": {
            "type": "object",
            "required": [
                "set"
            ],
            "properties": {
                "set": {
                    "type": "string"
                }
            }
        },
        "dto.SyncPricesResp": {
            "type": "object",
            "properties": {
                "checked": {
                    "type": "integer"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "message": {
                    "type": "string"
                },
                "skipped": {
                    "type": "integer"
                },
                "success": {
                    "type": "boolean"
                },
                "updated": {
                    "type": "integer"
                }
            }
        },
        "dto.UpdateProductReq": {
            "type": "object",
            "properties": {
                "autoPriceSync": {
                    "type": "boolean"
                },
                "description": {
                    "type": "string"
                },
                "expansion": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "isSingle": {
                    "type": "boolean"
                },
                "price": {
                    "type": "string"
                },
                "set": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                }
            }
        },
        "model.Product": {
            "type": "object",
            "properties": {
                "auto_price_sync": {
                    "type": "boolean"
                },
                "created_at": {
                    "type": "string"
                },
                "created_by": {
                    "type": "string"
                },
                "description": {
                    "type": "string"
                },
                "expansion": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "image_url": {
                    "type": "string"
                },
                "is_single": {
                    "type": "boolean"
                },
                "market_data": {
                    "type": "object"
                },
                "pokemon_card_id": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "set": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                },
                "variants": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/model.ProductVariant"
                    }
                }
            }
        },
        "model.ProductVariant": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "id": {
                    "type": "string"
                },
                "option1": {
                    "type": "string"
                },
                "price": {
                    "type": "number"
                },
                "product_id": {
                    "type": "string"
                },
                "sku": {
                    "type": "string"
                },
                "updated_at": {
                    "type": "string"
                }
            }
        },
        "pokemontcg.Card": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "imageUrl": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "number": {
                    "type": "string"
                },
                "pricing": {
                    "$ref": "#/definitions/pokemontcg.Pricing"
                },
                "rarity": {
                    "type": "string"
                },
                "set": {
                    "type": "string"
                },
                "setId": {
                    "type": "string"
                }
            }
        },
        "pokemontcg.Pricing": {
            "type": "object",
            "properties": {
                "estimated": {
                    "type": "boolean"
                },
                "highPrice": {
                    "type": "number"
                },
                "lastUpdated": {
                    "type": "string"
                },
                "lowPrice": {
                    "type": "number"
                },
                "marketPrice": {
                    "type": "number"
                },
                "midPrice": {
                    "type": "number"
                }
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Elite Cards API",
	Description:      "Pokemon 卡牌目录与 Shopify 商户店铺管理",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
