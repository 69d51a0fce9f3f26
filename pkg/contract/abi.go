package contract

// todoListABI is the TodoList contract interface. The server only calls the
// two view functions; the write functions and events are included so the ABI
// served to wallet clients via /api/contract/config is complete.
const todoListABI = `[
  {
    "inputs": [{"internalType": "bytes32", "name": "taskId", "type": "bytes32"}],
    "name": "getTask",
    "outputs": [
      {"internalType": "address", "name": "owner", "type": "address"},
      {"internalType": "bool", "name": "isCompleted", "type": "bool"},
      {"internalType": "bool", "name": "isDeleted", "type": "bool"},
      {"internalType": "uint256", "name": "createdAt", "type": "uint256"},
      {"internalType": "uint256", "name": "completedAt", "type": "uint256"}
    ],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [
      {"internalType": "address", "name": "user", "type": "address"},
      {"internalType": "bool", "name": "includeCompleted", "type": "bool"},
      {"internalType": "bool", "name": "includeDeleted", "type": "bool"}
    ],
    "name": "getFilteredTasks",
    "outputs": [{"internalType": "bytes32[]", "name": "", "type": "bytes32[]"}],
    "stateMutability": "view",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "bytes32", "name": "taskId", "type": "bytes32"}],
    "name": "createTask",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "bytes32", "name": "taskId", "type": "bytes32"}],
    "name": "completeTask",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "inputs": [{"internalType": "bytes32", "name": "taskId", "type": "bytes32"}],
    "name": "deleteTask",
    "outputs": [],
    "stateMutability": "nonpayable",
    "type": "function"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "bytes32", "name": "taskId", "type": "bytes32"},
      {"indexed": true, "internalType": "address", "name": "owner", "type": "address"},
      {"indexed": false, "internalType": "uint256", "name": "createdAt", "type": "uint256"}
    ],
    "name": "TaskCreated",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "bytes32", "name": "taskId", "type": "bytes32"},
      {"indexed": false, "internalType": "uint256", "name": "completedAt", "type": "uint256"}
    ],
    "name": "TaskCompleted",
    "type": "event"
  },
  {
    "anonymous": false,
    "inputs": [
      {"indexed": true, "internalType": "bytes32", "name": "taskId", "type": "bytes32"}
    ],
    "name": "TaskDeleted",
    "type": "event"
  }
]`
