package lexicon

// defaultTerms maps lowercase English programming terms to Korean.
var defaultTerms = map[string]string{
	// language constructs
	"function":  "함수",
	"method":    "메서드",
	"class":     "클래스",
	"variable":  "변수",
	"constant":  "상수",
	"array":     "배열",
	"object":    "객체",
	"string":    "문자열",
	"number":    "숫자",
	"boolean":   "불린",
	"null":      "널",
	"undefined": "정의되지않음",

	// users
	"user":    "사용자",
	"users":   "사용자들",
	"admin":   "관리자",
	"guest":   "게스트",
	"member":  "회원",
	"account": "계정",
	"profile": "프로필",

	// data
	"data":        "데이터",
	"info":        "정보",
	"information": "정보",
	"name":        "이름",
	"value":       "값",
	"key":         "키",
	"index":       "인덱스",
	"length":      "길이",
	"size":        "크기",
	"count":       "개수",
	"total":       "총합",

	// actions
	"get":    "가져오다",
	"set":    "설정하다",
	"add":    "추가하다",
	"remove": "제거하다",
	"create": "생성하다",
	"delete": "삭제하다",
	"update": "업데이트하다",
	"save":   "저장하다",
	"load":   "로드하다",
	"find":   "찾다",
	"search": "검색하다",
	"filter": "필터링하다",
	"sort":   "정렬하다",

	// control flow
	"if":     "만약",
	"else":   "그렇지않으면",
	"for":    "반복",
	"while":  "동안",
	"try":    "시도",
	"catch":  "잡기",
	"error":  "오류",
	"return": "반환",
	"import": "가져오기",
	"export": "내보내기",

	// state
	"new":      "새로운",
	"old":      "오래된",
	"current":  "현재",
	"previous": "이전",
	"next":     "다음",
	"first":    "첫번째",
	"last":     "마지막",
	"start":    "시작",
	"end":      "끝",
	"begin":    "시작하다",
	"finish":   "끝내다",

	// flags
	"true":    "참",
	"false":   "거짓",
	"yes":     "예",
	"no":      "아니오",
	"enable":  "활성화",
	"disable": "비활성화",
	"show":    "보이기",
	"hide":    "숨기기",

	// cloud and infrastructure
	"s3":       "S3",
	"aws":      "AWS",
	"azure":    "Azure",
	"gcp":      "GCP",
	"upload":   "업로드",
	"download": "다운로드",
	"bucket":   "버킷",
	"storage":  "저장소",
	"database": "데이터베이스",
	"db":       "DB",
	"server":   "서버",
	"client":   "클라이언트",
	"host":     "호스트",
	"port":     "포트",

	// http and apis
	"api":      "API",
	"endpoint": "엔드포인트",
	"request":  "요청",
	"response": "응답",
	"post":     "POST",
	"put":      "PUT",
	"patch":    "PATCH",

	// configuration
	"config":        "설정",
	"configuration": "구성",
	"env":           "환경변수",
	"environment":   "환경",
	"development":   "개발",
	"production":    "운영",
	"test":          "테스트",
	"staging":       "스테이징",

	// security
	"auth":           "인증",
	"authentication": "인증",
	"authorization":  "권한부여",
	"token":          "토큰",
	"secret":         "비밀키",
	"password":       "비밀번호",
	"hash":           "해시",
	"encrypt":        "암호화",
	"decrypt":        "복호화",

	// identifiers and time
	"id":        "아이디",
	"uuid":      "UUID",
	"guid":      "GUID",
	"timestamp": "타임스탬프",
	"date":      "날짜",
	"time":      "시간",

	// status
	"success":  "성공",
	"fail":     "실패",
	"failure":  "실패",
	"pending":  "대기중",
	"loading":  "로딩중",
	"complete": "완료",
	"cancel":   "취소",

	// files
	"file":      "파일",
	"folder":    "폴더",
	"directory": "디렉토리",
	"path":      "경로",
	"url":       "URL",
	"uri":       "URI",
	"link":      "링크",

	// logging
	"log":     "로그",
	"debug":   "디버그",
	"warn":    "경고",
	"warning": "경고",
	"fatal":   "치명적오류",
}

// defaultStopWords are tokens that carry no meaning worth translating.
// "user" and "admin" are deliberately absent: both are dictionary terms.
var defaultStopWords = []string{
	// css units
	"px", "em", "rem", "vh", "vw", "%", "pt", "pc", "in", "cm", "mm",
	// keywords
	"var", "let", "const", "if", "else", "for", "while", "do", "switch", "case",
	"true", "false", "null", "undefined", "void", "typeof", "instanceof",
	// html tags and attributes
	"div", "span", "img", "src", "alt", "href", "id", "class", "style",
	"input", "button", "form", "table", "tr", "td", "th", "ul", "li", "ol",
	// file formats
	"css", "js", "html", "xml", "json", "svg", "png", "jpg", "jpeg", "gif",
	"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx", "zip", "rar",
	// network and protocols
	"http", "https", "ftp", "ssh", "tcp", "udp", "ip", "dns", "cdn",
	"www", "com", "org", "net", "edu", "gov", "io", "dev", "app",
	// filesystem and tooling
	"localhost", "root", "temp", "tmp", "bin", "lib",
	"dist", "build", "node", "npm", "yarn", "git", "svn",
}

// defaultAcronyms are short all-caps tokens that still translate meaningfully.
var defaultAcronyms = []string{"API", "URL", "AWS", "GCP", "SQL", "JWT", "UUID"}
